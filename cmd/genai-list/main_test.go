package main

import (
	"context"
	"strings"
	"testing"

	"github.com/skandig/genai-list-client/pkg/pager"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("GENAI_TEST_VAR", "set")

	if got := getEnv("GENAI_TEST_VAR", "fallback"); got != "set" {
		t.Errorf("getEnv() = %q, want set", got)
	}
	if got := getEnv("GENAI_TEST_VAR_UNSET", "fallback"); got != "fallback" {
		t.Errorf("getEnv() = %q, want fallback", got)
	}
}

func TestListCollection_Unknown(t *testing.T) {
	_, err := listCollection(context.Background(), nil, pager.Collection("bogus"), nil)
	if err == nil {
		t.Fatal("listCollection() with unknown collection should fail")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error %q should name the unknown collection", err)
	}
}
