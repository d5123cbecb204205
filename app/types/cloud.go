package types

import (
	"strings"

	"github.com/labstack/echo/v4"
	"google.golang.org/protobuf/types/known/structpb"
)

const regionField = "region"

type ListPlansRequest struct {
	Region    string
	HasRegion bool
}

func (r *ListPlansRequest) GetRegion() string {
	if r == nil {
		return ""
	}
	return r.Region
}

func (r *ListPlansRequest) GetHasRegion() bool {
	if r == nil {
		return false
	}
	return r.HasRegion
}

func NewListPlansRequestFromContext(ctx echo.Context) (*ListPlansRequest, error) {
	return NewListPlansRequest(ctx.QueryParam(regionField)), nil
}

func NewListPlansRequestFromStruct(body *structpb.Struct) (*ListPlansRequest, error) {
	if body == nil {
		return &ListPlansRequest{}, nil
	}
	value, ok := body.GetFields()[regionField]
	if !ok {
		return &ListPlansRequest{}, nil
	}
	return NewListPlansRequest(value.GetStringValue()), nil
}

// Validate never rejects a region; unusable codes fall back to the default region.
func (r *ListPlansRequest) Validate() error {
	return nil
}

// NewListPlansRequest treats a blank region as absent.
func NewListPlansRequest(region string) *ListPlansRequest {
	region = strings.TrimSpace(region)
	return &ListPlansRequest{Region: region, HasRegion: region != ""}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
