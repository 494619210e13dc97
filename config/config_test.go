package config

import (
	"reflect"
	"testing"
)

func TestParseAdminIDs(t *testing.T) {
	for _, tc := range []struct {
		name    string
		raw     string
		want    []int64
		wantErr bool
	}{
		{"empty", "", []int64{}, false},
		{"single", "123456789", []int64{123456789}, false},
		{"several with spaces", " 1, 2 ,3 ", []int64{1, 2, 3}, false},
		{"trailing comma", "1,2,", []int64{1, 2}, false},
		{"not a number", "1,abc", nil, true},
		{"id overflowing int32", "5000000000", []int64{5000000000}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAdminIDs(tc.raw)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{42, 5000000000}}

	if !cfg.IsAdmin(42) {
		t.Error("listed id must be admin")
	}
	if !cfg.IsAdmin(5000000000) {
		t.Error("64-bit id must be admin")
	}
	if cfg.IsAdmin(43) {
		t.Error("unlisted id must not be admin")
	}
	if cfg.IsAdmin(0) {
		t.Error("zero id must not be admin")
	}
}

func TestAvatarStorageConfigured(t *testing.T) {
	complete := &Config{
		R2AccountID:       "acc",
		R2AccessKeyID:     "key",
		R2SecretAccessKey: "secret",
		R2BucketName:      "bucket",
		R2PublicBaseURL:   "https://cdn.example.com",
	}
	if !complete.AvatarStorageConfigured() {
		t.Error("complete block should enable avatar storage")
	}

	partial := *complete
	partial.R2BucketName = ""
	if partial.AvatarStorageConfigured() {
		t.Error("incomplete block must disable avatar storage")
	}

	if (&Config{}).AvatarStorageConfigured() {
		t.Error("empty block must disable avatar storage")
	}
}
