package notifier

import (
	"testing"
)

func TestSendPayload(t *testing.T) {
	p := sendPayload("42", Message{Text: "<b>hi</b>"})
	if p["chat_id"] != "42" || p["text"] != "<b>hi</b>" {
		t.Errorf("payload fields wrong: %v", p)
	}
	if p["parse_mode"] != "HTML" {
		t.Errorf("expected HTML parse mode, got %v", p["parse_mode"])
	}
	if p["disable_web_page_preview"] != false {
		t.Errorf("preview should stay enabled by default, got %v", p["disable_web_page_preview"])
	}

	p = sendPayload("42", Message{Text: "scan", DisablePreview: true})
	if p["disable_web_page_preview"] != true {
		t.Error("scan-style message should disable link previews")
	}
}

func TestCommands_CoversBotSurface(t *testing.T) {
	want := map[string]bool{"analyze": false, "scan": false, "status": false}
	for _, c := range Commands() {
		if _, ok := want[c.Command]; !ok {
			t.Errorf("unexpected registered command %q", c.Command)
			continue
		}
		want[c.Command] = true
		if c.Description == "" {
			t.Errorf("command %q has no description", c.Command)
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("command %q missing from the registered menu", name)
		}
	}
}
