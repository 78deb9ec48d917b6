package server

import (
	"html/template"
)

// createTemplateFunctions returns a map of template functions for use in HTML templates
func createTemplateFunctions() template.FuncMap {
	return template.FuncMap{
		"atHandle": func(screenName string) string {
			return "@" + screenName
		},
	}
}
