package metadata

import (
	"strings"

	"github.com/mssola/useragent"
)

// Client kinds reported by ClientKind.
const (
	ClientBot     = "bot"
	ClientMobile  = "mobile"
	ClientBrowser = "browser"
	ClientOther   = "other"
)

// ClientKind buckets a User-Agent into a small fixed set suitable for a
// metric label.
func ClientKind(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return ClientOther
	}
	ua := useragent.New(userAgent)
	switch {
	case ua.Bot():
		return ClientBot
	case ua.Mobile():
		return ClientMobile
	}
	if name, _ := ua.Browser(); name != "" && ua.OS() != "" {
		return ClientBrowser
	}
	return ClientOther
}

// DescribeClient renders a User-Agent as "<browser> on <os>" for logs.
func DescribeClient(userAgent string) string {
	if strings.TrimSpace(userAgent) == "" {
		return "unknown"
	}
	ua := useragent.New(userAgent)
	name, _ := ua.Browser()
	os := ua.OS()
	switch {
	case name == "" && os == "":
		return "unknown"
	case os == "":
		return name
	case name == "":
		return os
	}
	return strings.TrimSpace(name + " on " + os)
}
