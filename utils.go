package jipg

import (
	"fmt"
	"strings"
)

// replace substitutes {key} placeholders in template with the
// stringified params.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}
	return template
}
