package mail

import "testing"

func TestNewClient_DisabledWithoutConfig(t *testing.T) {
	if c := NewClient("", "from@example.com", "to@example.com"); c != nil {
		t.Error("missing api key should disable the client")
	}
	if c := NewClient("re_key", "from@example.com", ""); c != nil {
		t.Error("missing recipient should disable the client")
	}
}

func TestNewClient_DefaultsSender(t *testing.T) {
	c := NewClient("re_key", "", "to@example.com")
	if c == nil {
		t.Fatal("expected configured client")
	}
	if c.from != "onboarding@resend.dev" {
		t.Errorf("expected default sender, got %q", c.from)
	}
	if c.to != "to@example.com" {
		t.Errorf("recipient: got %q", c.to)
	}
}
