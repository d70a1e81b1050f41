package entity

// MessageKind tags a push message so the service worker can distinguish
// broadcasts from single-device pings.
type MessageKind string

const (
	KindBroadcast MessageKind = "broadcast"
	KindPing      MessageKind = "ping"
)

// Defaults used when the caller omits payload fields. Kept in sync with the
// PWA's notification assets.
const (
	DefaultBroadcastTitle = "EV Alert — Test"
	DefaultBroadcastBody  = "If you receive this, broadcast works."
	DefaultPingTitle      = "EV Alert — Ping"
	DefaultPingBody       = "Direct ping to your device"
	DefaultLinkURL        = "/"
	DefaultIconRef        = "/icons/icon-192.png"
)

// BroadcastPayload is the content of a single send operation. It is built
// once per dispatch and never mutated afterwards.
type BroadcastPayload struct {
	Title   string      `json:"title"`
	Body    string      `json:"body"`
	IconRef string      `json:"icon"`
	LinkURL string      `json:"url"`
	Kind    MessageKind `json:"kind"`
}

// NewBroadcastPayload builds a broadcast payload, substituting fixed defaults
// for missing fields rather than failing.
func NewBroadcastPayload(title, body, url string) BroadcastPayload {
	return newPayload(KindBroadcast, title, DefaultBroadcastTitle, body, DefaultBroadcastBody, url)
}

// NewPingPayload builds a single-device ping payload with ping defaults.
func NewPingPayload(title, body, url string) BroadcastPayload {
	return newPayload(KindPing, title, DefaultPingTitle, body, DefaultPingBody, url)
}

func newPayload(kind MessageKind, title, defaultTitle, body, defaultBody, url string) BroadcastPayload {
	if title == "" {
		title = defaultTitle
	}
	if body == "" {
		body = defaultBody
	}
	if url == "" {
		url = DefaultLinkURL
	}

	return BroadcastPayload{
		Title:   title,
		Body:    body,
		IconRef: DefaultIconRef,
		LinkURL: url,
		Kind:    kind,
	}
}

// Data returns the payload as FCM data fields. The service worker renders
// from data messages so that background delivery behaves the same on every
// platform.
func (p BroadcastPayload) Data() map[string]string {
	return map[string]string{
		"title": p.Title,
		"body":  p.Body,
		"icon":  p.IconRef,
		"url":   p.LinkURL,
		"kind":  string(p.Kind),
	}
}
