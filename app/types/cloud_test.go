package types

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestNewListPlansRequestFromContext(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		region    string
		hasRegion bool
	}{
		{name: "no region", target: "/plans", region: "", hasRegion: false},
		{name: "blank region", target: "/plans?region=", region: "", hasRegion: false},
		{name: "whitespace region", target: "/plans?region=%20%20", region: "", hasRegion: false},
		{name: "region", target: "/plans?region=eu", region: "eu", hasRegion: true},
		{name: "malformed region kept as-is", target: "/plans?region=EURO", region: "EURO", hasRegion: true},
		{name: "trimmed region", target: "/plans?region=%20uk%20", region: "uk", hasRegion: true},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			parsed, err := NewListPlansRequestFromContext(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if parsed.GetRegion() != tt.region || parsed.GetHasRegion() != tt.hasRegion {
				t.Fatalf("unexpected parsed request: %+v", parsed)
			}
			if err := parsed.Validate(); err != nil {
				t.Fatalf("expected region never rejected, got %v", err)
			}
		})
	}
}

func TestNewListPlansRequestFromStruct(t *testing.T) {
	parsed, err := NewListPlansRequestFromStruct(nil)
	if err != nil || parsed.GetHasRegion() {
		t.Fatalf("expected all-regions request for nil body, got %+v err=%v", parsed, err)
	}

	body, err := structpb.NewStruct(map[string]interface{}{"region": "uk"})
	if err != nil {
		t.Fatalf("new struct failed: %v", err)
	}
	parsed, err = NewListPlansRequestFromStruct(body)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !parsed.GetHasRegion() || parsed.GetRegion() != "uk" {
		t.Fatalf("unexpected parsed request: %+v", parsed)
	}

	body, _ = structpb.NewStruct(map[string]interface{}{"other": "x"})
	parsed, _ = NewListPlansRequestFromStruct(body)
	if parsed.GetHasRegion() {
		t.Fatalf("expected all-regions request, got %+v", parsed)
	}
}

func TestListPlansRequestNilGetters(t *testing.T) {
	var req *ListPlansRequest
	if req.GetRegion() != "" || req.GetHasRegion() {
		t.Fatal("expected zero values from nil request")
	}
}
