package domain

import "strings"

type SegmentKind string

const (
	SegmentText  SegmentKind = "text"
	SegmentImage SegmentKind = "image"
)

type Segment struct {
	Kind  SegmentKind `json:"kind"`
	Value string      `json:"value"`
}

// Message is a rendered notification addressed to one destination.
type Message struct {
	DestinationID string    `json:"destination_id"`
	AccountID     string    `json:"account_id"`
	PostID        string    `json:"post_id"`
	Segments      []Segment `json:"segments"`
}

// Text joins the text segments.
func (m Message) Text() string {
	var sb strings.Builder
	for _, s := range m.Segments {
		if s.Kind == SegmentText {
			sb.WriteString(s.Value)
		}
	}
	return sb.String()
}

// Images returns image references in render order.
func (m Message) Images() []string {
	var urls []string
	for _, s := range m.Segments {
		if s.Kind == SegmentImage {
			urls = append(urls, s.Value)
		}
	}
	return urls
}

// String flattens the message, writing images as "[image: url]".
func (m Message) String() string {
	var sb strings.Builder
	for _, s := range m.Segments {
		switch s.Kind {
		case SegmentImage:
			sb.WriteString("[image: ")
			sb.WriteString(s.Value)
			sb.WriteString("]\n")
		default:
			sb.WriteString(s.Value)
		}
	}
	return sb.String()
}
