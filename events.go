package sentry

import (
	"encoding/json"
	"fmt"
)

// Event represents a single error event within an issue.
type Event struct {
	Model
}

// ID returns the event identifier.
func (e *Event) ID() (string, error) {
	return e.GetString("id")
}

// Tags reshapes the event's tag list of {key, value} pairs into a map.
// The map is rebuilt on every call from the backing document.
func (e *Event) Tags() (map[string]string, error) {
	v, err := e.Get("tags")
	if err != nil {
		return nil, err
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("sentry: attribute %q is %T, not array", "tags", v)
	}

	tags := make(map[string]string, len(list))
	for _, item := range list {
		pair, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("sentry: tag entry is %T, not object", item)
		}
		key, ok := pair["key"].(string)
		if !ok {
			return nil, &MissingAttributeError{Key: "tags.key"}
		}
		value, ok := pair["value"].(string)
		if !ok {
			return nil, &MissingAttributeError{Key: "tags.value"}
		}
		tags[key] = value
	}

	return tags, nil
}

// EventCount is one bucket of the project stats endpoint: how many
// events arrived in the timespan starting at Timestamp. The endpoint
// serializes buckets as [timestamp, count] pairs rather than objects, so
// EventCount does not share the document contract of the other models.
type EventCount struct {
	Timestamp int64
	Count     int64
}

// UnmarshalJSON implements json.Unmarshaler for the pair format.
func (c *EventCount) UnmarshalJSON(data []byte) error {
	var pair []int64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("sentry: event count has %d elements, want 2", len(pair))
	}
	c.Timestamp = pair[0]
	c.Count = pair[1]
	return nil
}

// MarshalJSON implements json.Marshaler, mirroring the pair format.
func (c EventCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int64{c.Timestamp, c.Count})
}
