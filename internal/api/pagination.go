package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Page is one page of a collection. The backend returns either a
// {count, next, previous, results} envelope or a plain array depending
// on the endpoint; both decode into the same shape here.
type Page[T any] struct {
	Count    int
	Next     string
	Previous string
	Results  []T
}

// HasMore reports whether another page follows.
func (p Page[T]) HasMore() bool {
	return p.Next != ""
}

type pageEnvelope struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  json.RawMessage `json:"results"`
}

// decodePage normalizes the two collection shapes into a Page.
func decodePage[T any](data []byte) (Page[T], error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Page[T]{Results: []T{}}, nil
	}

	if trimmed[0] == '[' {
		var results []T
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return Page[T]{}, fmt.Errorf("parse collection: %w", err)
		}
		return Page[T]{Count: len(results), Results: results}, nil
	}

	var env pageEnvelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return Page[T]{}, fmt.Errorf("parse collection envelope: %w", err)
	}
	if env.Results == nil {
		return Page[T]{}, fmt.Errorf("parse collection envelope: missing results")
	}

	var results []T
	if err := json.Unmarshal(env.Results, &results); err != nil {
		return Page[T]{}, fmt.Errorf("parse collection results: %w", err)
	}

	page := Page[T]{Count: env.Count, Results: results}
	if env.Next != nil {
		page.Next = *env.Next
	}
	if env.Previous != nil {
		page.Previous = *env.Previous
	}
	if page.Count == 0 {
		page.Count = len(results)
	}
	return page, nil
}

// getPage fetches path and normalizes the response into a Page.
func getPage[T any](ctx context.Context, c *Client, path string, query url.Values) (Page[T], error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, query, &raw); err != nil {
		return Page[T]{}, err
	}
	return decodePage[T](raw)
}

// maxFollowPages bounds All against a backend that never stops paging.
const maxFollowPages = 100

// All drains a paginated collection starting from first, following the
// backend's absolute next links.
func All[T any](ctx context.Context, c *Client, first Page[T]) ([]T, error) {
	results := first.Results
	next := first.Next

	for i := 0; next != "" && i < maxFollowPages; i++ {
		var raw json.RawMessage
		if err := c.get(ctx, next, nil, &raw); err != nil {
			return nil, fmt.Errorf("follow page %q: %w", next, err)
		}
		page, err := decodePage[T](raw)
		if err != nil {
			return nil, err
		}
		results = append(results, page.Results...)
		next = page.Next
	}

	return results, nil
}
