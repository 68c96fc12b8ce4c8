package sftpclient

import (
	"context"
	"strings"
	"testing"
)

func TestUploadFilesRequiresCredentials(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{"missing host", Config{User: "u", Pass: "p"}},
		{"missing user", Config{Host: "h", Pass: "p"}},
		{"missing pass", Config{Host: "h", User: "u"}},
	}

	for _, tc := range testCases {
		err := UploadFiles(context.Background(), tc.cfg, []string{"report.csv"})
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), "missing env") {
			t.Errorf("%s: error = %v", tc.name, err)
		}
	}
}

func TestUploadFilesCanceledDial(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{Host: "localhost", Port: 1, User: "u", Pass: "p"}
	if err := UploadFiles(ctx, cfg, []string{"report.csv"}); err == nil {
		t.Fatal("expected error with canceled context")
	}
}
