package birdclient

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// OAuth 1.0a Request Signing
////////////////////////////////////////////////////////////////////////////////

// authHeader builds the OAuth 1.0a Authorization header for a request.
// endpoint must be the bare URL; params are the query or form parameters,
// which take part in the signature base string.
func (c *Client) authHeader(method, endpoint string, params map[string]string) string {
	oauth := map[string]string{
		"oauth_consumer_key":     c.creds.APIKey,
		"oauth_nonce":            c.nonceFn(),
		"oauth_signature_method": "HMAC-SHA1",
		"oauth_timestamp":        strconv.FormatInt(c.nowFn().Unix(), 10),
		"oauth_token":            c.creds.AccessToken,
		"oauth_version":          "1.0",
	}

	all := map[string]string{}
	for k, v := range oauth {
		all[k] = v
	}
	for k, v := range params {
		all[k] = v
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	paramParts := make([]string, 0, len(keys))
	for _, k := range keys {
		paramParts = append(paramParts, rfc3986(k)+"="+rfc3986(all[k]))
	}
	paramStr := strings.Join(paramParts, "&")

	base := method + "&" + rfc3986(endpoint) + "&" + rfc3986(paramStr)
	signingKey := rfc3986(c.creds.APISecret) + "&" + rfc3986(c.creds.AccessTokenSecret)
	mac := hmac.New(sha1.New, []byte(signingKey))
	mac.Write([]byte(base))
	oauth["oauth_signature"] = base64.StdEncoding.EncodeToString(mac.Sum(nil))

	hdrKeys := make([]string, 0, len(oauth))
	for k := range oauth {
		hdrKeys = append(hdrKeys, k)
	}
	sort.Strings(hdrKeys)

	authParts := make([]string, 0, len(hdrKeys))
	for _, k := range hdrKeys {
		authParts = append(authParts, rfc3986(k)+"=\""+rfc3986(oauth[k])+"\"")
	}
	return "OAuth " + strings.Join(authParts, ", ")
}

// rfc3986 percent-encodes for OAuth signature material
func rfc3986(s string) string {
	encoded := url.QueryEscape(s)
	encoded = strings.ReplaceAll(encoded, "+", "%20")
	encoded = strings.ReplaceAll(encoded, "*", "%2A")
	return encoded
}
