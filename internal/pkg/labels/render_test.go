package labels

import (
	"strings"
	"testing"
)

func sampleRecipients(n int) []Recipient {
	names := []string{"สมชาย ใจดี", "สมหญิง รักเรียน", "วิชัย มั่นคง", "อรทัย แสงทอง", "ประยุทธ ทองดี"}
	recipients := make([]Recipient, 0, n)
	for i := 0; i < n; i++ {
		recipients = append(recipients, Recipient{
			FullName: names[i%len(names)],
			Address:  "123/45 ถนนสุขุมวิท กรุงเทพฯ 10110",
			Phone:    "0812345678",
		})
	}
	return recipients
}

func TestRenderContainsRecipientData(t *testing.T) {
	recipients := []Recipient{
		{
			FullName:       "สมชาย ใจดี",
			Address:        "99 หมู่ 4 ต.บ้านใหม่",
			Phone:          "0898765432",
			TrackingNumber: "TH123456789",
		},
	}

	for _, labelType := range []LabelType{TypeMinimal, TypeFull, TypeFourUp} {
		doc, err := Render(labelType, recipients)
		if err != nil {
			t.Fatalf("Render(%s) error: %v", labelType, err)
		}
		html := string(doc)
		for _, want := range []string{"สมชาย ใจดี", "99 หมู่ 4 ต.บ้านใหม่", "0898765432", "TH123456789"} {
			if !strings.Contains(html, want) {
				t.Errorf("Render(%s) output missing %q", labelType, want)
			}
		}
	}
}

func TestRenderOmitsEmptyTracking(t *testing.T) {
	doc, err := Render(TypeMinimal, sampleRecipients(1))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(doc), "Tracking:") {
		t.Error("tracking line rendered for recipient without tracking number")
	}
}

func TestRenderFourUpLimit(t *testing.T) {
	if _, err := Render(TypeFourUp, sampleRecipients(4)); err != nil {
		t.Errorf("four recipients should fit one sheet: %v", err)
	}
	if _, err := Render(TypeFourUp, sampleRecipients(5)); err == nil {
		t.Error("expected error for five recipients on one 4-up sheet")
	}
}

func TestRenderRejectsEmptyAndUnknown(t *testing.T) {
	if _, err := Render(TypeMinimal, nil); err == nil {
		t.Error("expected error for empty recipients")
	}
	if _, err := Render(LabelType("poster"), sampleRecipients(1)); err == nil {
		t.Error("expected error for unknown label type")
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	doc, err := Render(TypeFull, []Recipient{{
		FullName: "<script>alert(1)</script>",
		Address:  "addr",
		Phone:    "0800000000",
	}})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(doc), "<script>") {
		t.Error("recipient data must be HTML-escaped")
	}
}
