//go:build e2e
// +build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	grpcapi "github.com/vibast-solutions/ms-go-cloud-plans/app/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	defaultHTTPBase    = "http://localhost:38080"
	defaultGRPCAddr    = "localhost:39090"
	defaultRoutePrefix = "/api/v1/cloud"
)

type httpClient struct {
	baseURL string
	client  *http.Client
}

func newHTTPClient(baseURL string) *httpClient {
	return &httpClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *httpClient) getJSON(t *testing.T, path string, out any) *http.Response {
	t.Helper()

	resp, err := c.client.Get(c.baseURL + path)
	if err != nil {
		t.Fatalf("http request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response failed: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("decode response failed: %v (body=%s)", err, string(body))
		}
	}
	return resp
}

func waitForHTTP(baseURL string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 2 * time.Second}
	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("http service not ready at %s", baseURL)
}

func waitForGRPC(addr string, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return fmt.Errorf("grpc service not ready at %s", addr)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func TestCloudPlansE2E(t *testing.T) {
	httpBase := envOrDefault("CLOUD_PLANS_HTTP_URL", defaultHTTPBase)
	grpcAddr := envOrDefault("CLOUD_PLANS_GRPC_ADDR", defaultGRPCAddr)
	prefix := envOrDefault("CLOUD_PLANS_ROUTE_PREFIX", defaultRoutePrefix)

	if err := waitForHTTP(httpBase, 30*time.Second); err != nil {
		t.Fatalf("http not ready: %v", err)
	}
	if err := waitForGRPC(grpcAddr, 30*time.Second); err != nil {
		t.Fatalf("grpc not ready: %v", err)
	}

	client := newHTTPClient(httpBase)

	conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("grpc dial failed: %v", err)
	}
	defer conn.Close()
	grpcClient := grpcapi.NewCloudServiceClient(conn)

	t.Run("HTTPAllRegions", func(t *testing.T) {
		var body map[string]any
		resp := client.getJSON(t, prefix+"/plans", &body)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		regions, ok := body["regions"].(map[string]any)
		if !ok || len(regions) == 0 {
			t.Fatalf("expected regions map, got %v", body)
		}
		if _, ok := regions["us"]; !ok {
			t.Fatalf("expected us region, got %v", regions)
		}
	})

	t.Run("HTTPRegionFallback", func(t *testing.T) {
		var fallback, us map[string]any
		if resp := client.getJSON(t, prefix+"/plans?region=zz", &fallback); resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		client.getJSON(t, prefix+"/plans?region=us", &us)
		if fallback["region_code"] != "us" || fallback["region"] != us["region"] {
			t.Fatalf("expected fallback to us, got %v", fallback)
		}
	})

	t.Run("HTTPBenefits", func(t *testing.T) {
		var body map[string]any
		resp := client.getJSON(t, prefix+"/benefits", &body)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		if benefits, ok := body["benefits"].([]any); !ok || len(benefits) == 0 {
			t.Fatalf("expected benefits, got %v", body)
		}
	})

	t.Run("HTTPRequestID", func(t *testing.T) {
		resp := client.getJSON(t, "/health", nil)
		if resp.Header.Get("X-Request-ID") == "" {
			t.Fatal("expected X-Request-ID header")
		}
	})

	t.Run("GRPCListPlansRegion", func(t *testing.T) {
		req, _ := structpb.NewStruct(map[string]any{"region": "eu"})
		resp, err := grpcClient.ListPlans(context.Background(), req)
		if err != nil {
			t.Fatalf("list plans failed: %v", err)
		}
		if resp.GetFields()["region_code"].GetStringValue() != "eu" {
			t.Fatalf("expected eu region, got %v", resp)
		}
	})

	t.Run("GRPCGetBenefits", func(t *testing.T) {
		resp, err := grpcClient.GetBenefits(context.Background(), &emptypb.Empty{})
		if err != nil {
			t.Fatalf("get benefits failed: %v", err)
		}
		if len(resp.GetFields()["benefits"].GetListValue().GetValues()) == 0 {
			t.Fatalf("expected benefits, got %v", resp)
		}
	})

	t.Run("GRPCHealth", func(t *testing.T) {
		resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: grpcapi.ServiceName})
		if err != nil {
			t.Fatalf("health check failed: %v", err)
		}
		if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
			t.Fatalf("expected SERVING, got %v", resp.GetStatus())
		}
	})
}
