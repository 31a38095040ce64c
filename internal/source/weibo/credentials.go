package weibo

import "sync/atomic"

// CredentialHolder is a Credentials value that can be replaced at runtime.
type CredentialHolder struct {
	cookie atomic.Pointer[string]
}

func NewCredentialHolder(cookie string) *CredentialHolder {
	h := &CredentialHolder{}
	h.Set(cookie)
	return h
}

func (h *CredentialHolder) Cookie() string {
	if c := h.cookie.Load(); c != nil {
		return *c
	}
	return ""
}

func (h *CredentialHolder) Set(cookie string) {
	h.cookie.Store(&cookie)
}
