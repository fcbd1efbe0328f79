package api

import "strings"

// Cursor is one direction of Sentry's pagination Link header: the page
// URL, an opaque cursor token, and a flag reporting whether results
// continue in that direction.
type Cursor struct {
	URL     string
	Value   string
	Results bool
}

// Links holds the cursor pair parsed from one paginated response.
type Links struct {
	Previous *Cursor
	Next     *Cursor
}

// ParseLink parses Sentry's pagination response header. The format is a
// comma-separated list of entries:
//
//	<https://sentry.io/api/0/projects/?cursor=100:1:0>; rel="next"; results="true"; cursor="100:1:0"
//
// Entries with an unrecognized rel are skipped, as are entries without a
// URL. An empty or missing header yields zero cursors.
func ParseLink(header string) Links {
	var links Links

	for _, entry := range strings.Split(header, ",") {
		cursor, rel := parseLinkEntry(entry)
		if cursor == nil {
			continue
		}
		switch rel {
		case "previous":
			links.Previous = cursor
		case "next":
			links.Next = cursor
		}
	}

	return links
}

func parseLinkEntry(entry string) (cursor *Cursor, rel string) {
	parts := strings.Split(entry, ";")

	target := strings.TrimSpace(parts[0])
	if !strings.HasPrefix(target, "<") || !strings.HasSuffix(target, ">") {
		return nil, ""
	}

	cursor = &Cursor{URL: strings.Trim(target, "<>")}
	for _, param := range parts[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(param), "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "rel":
			rel = value
		case "results":
			cursor.Results = value == "true"
		case "cursor":
			cursor.Value = value
		}
	}

	return cursor, rel
}
