package dashboard

import (
	"time"

	"github.com/WangWilly/birdboard/pkgs/clients/birdclient"
	"github.com/WangWilly/birdboard/pkgs/dashboard/dashdto"
	"github.com/WangWilly/birdboard/pkgs/timefmt"
	"github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////
// Display Timestamp Settings
////////////////////////////////////////////////////////////////////////////////

const (
	HOUR_THRESHOLD = 24

	POST_SUFFIX    = "h"
	MESSAGE_SUFFIX = " hours ago"
)

////////////////////////////////////////////////////////////////////////////////
// Raw Response Mapping
//
// All mapping goes through gjson: a field the API left out resolves to its
// zero value instead of failing the whole aggregation.
////////////////////////////////////////////////////////////////////////////////

// mapProfile fills ViewModel.User from the raw profile object
func mapProfile(raw []byte, vm *dashdto.ViewModel) {
	profile := gjson.ParseBytes(raw)
	vm.User = dashdto.Profile{
		Name:          profile.Get("name").String(),
		ScreenName:    profile.Get("screen_name").String(),
		AvatarURL:     profile.Get("profile_image_url").String(),
		BackgroundURL: profile.Get("profile_background_image_url").String(),
		FollowerCount: int(profile.Get("followers_count").Int()),
	}
}

// mapTimeline appends the raw timeline entries to ViewModel.Posts in input
// order. When an entry wraps a reshared original, author and content come from
// the embedded object, never from the outer wrapper; the display timestamp
// stays the outer entry's.
func mapTimeline(raw []byte, vm *dashdto.ViewModel) {
	for _, entry := range gjson.ParseBytes(raw).Array() {
		src := entry
		if reshare := entry.Get("retweeted_status"); reshare.Exists() {
			src = reshare
		}

		vm.Posts = append(vm.Posts, dashdto.Post{
			TimeElapsed: timefmt.Elapsed(parseCreatedAt(entry.Get("created_at")), HOUR_THRESHOLD, POST_SUFFIX),
			Author:      mapAuthor(src.Get("user")),
			Text:        src.Get("text").String(),
			LikeCount:   int(src.Get("favorite_count").Int()),
			RepostCount: int(src.Get("retweet_count").Int()),
		})
	}
}

// mapFollowers appends the raw "users" entries to ViewModel.Followers in input
// order
func mapFollowers(raw []byte, vm *dashdto.ViewModel) {
	for _, user := range gjson.GetBytes(raw, "users").Array() {
		vm.Followers = append(vm.Followers, dashdto.Follower{
			Name:       user.Get("name").String(),
			ScreenName: user.Get("screen_name").String(),
			AvatarURL:  user.Get("profile_image_url").String(),
			Following:  user.Get("following").Bool(),
		})
	}
}

// mapMessages converts one side of the message box into Message values. The
// counterpart lands under From for received messages and To for sent ones;
// the numeric timestamp is kept for merge ordering only. The result does not
// touch the ViewModel, both sides are merged later.
func mapMessages(raw []byte, direction birdclient.Direction) []dashdto.Message {
	messages := make([]dashdto.Message, 0)
	for _, entry := range gjson.ParseBytes(raw).Array() {
		ts := parseCreatedAt(entry.Get("created_at"))
		message := dashdto.Message{
			Timestamp:   ts.Unix(),
			TimeElapsed: timefmt.Elapsed(ts, HOUR_THRESHOLD, MESSAGE_SUFFIX),
			Text:        entry.Get("text").String(),
		}

		if direction == birdclient.DIRECTION_SENT {
			counterpart := mapCounterpart(entry.Get("recipient"))
			message.To = &counterpart
		} else {
			counterpart := mapCounterpart(entry.Get("sender"))
			message.From = &counterpart
		}
		messages = append(messages, message)
	}
	return messages
}

////////////////////////////////////////////////////////////////////////////////
// Shared Helpers
////////////////////////////////////////////////////////////////////////////////

func mapAuthor(user gjson.Result) dashdto.Author {
	return dashdto.Author{
		Name:       user.Get("name").String(),
		ScreenName: user.Get("screen_name").String(),
		AvatarURL:  user.Get("profile_image_url").String(),
	}
}

func mapCounterpart(user gjson.Result) dashdto.Counterpart {
	return dashdto.Counterpart{
		Name:       user.Get("name").String(),
		ScreenName: user.Get("screen_name").String(),
		AvatarURL:  user.Get("profile_image_url").String(),
	}
}

// parseCreatedAt parses the API's created_at format. An absent or malformed
// value yields the zero time, which the formatter renders through its date
// branch rather than failing the request.
func parseCreatedAt(raw gjson.Result) time.Time {
	ts, err := time.Parse(time.RubyDate, raw.String())
	if err != nil {
		return time.Time{}
	}
	return ts
}
