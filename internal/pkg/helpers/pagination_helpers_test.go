package helpers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		size       int
		wantOffset uint64
		wantLimit  int
	}{
		{name: "first page", page: 1, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "third page", page: 3, size: 20, wantOffset: 40, wantLimit: 20},
		{name: "page below one", page: 0, size: 10, wantOffset: 0, wantLimit: 10},
		{name: "size below one", page: 2, size: 0, wantOffset: 10, wantLimit: DefaultPageSize},
		{name: "size above cap", page: 2, size: 1000, wantOffset: 10, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, limit := CalculateOffsetLimit(tt.page, tt.size)
			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Fatalf("CalculateOffsetLimit(%d, %d) = (%d, %d), want (%d, %d)",
					tt.page, tt.size, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(12, 2, 5)
	if info.CurrentPage != 2 || info.TotalPages != 3 || info.PageSize != 5 || info.TotalItems != 12 {
		t.Fatalf("unexpected pagination info: %+v", info)
	}

	empty := NewPaginationInfo(0, 1, 10)
	if empty.TotalPages != 1 || empty.CurrentPage != 1 {
		t.Fatalf("unexpected pagination info for empty result: %+v", empty)
	}

	clamped := NewPaginationInfo(5, 9, 10)
	if clamped.CurrentPage != 1 || clamped.TotalPages != 1 {
		t.Fatalf("expected current page clamped to last page, got %+v", clamped)
	}
}

func TestParsePaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newContext := func(target string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, target, nil)
		return c
	}

	page, size := ParsePaginationParams(newContext("/departments?page=2&pageSize=5"))
	if page != 2 || size != 5 {
		t.Fatalf("expected (2, 5), got (%d, %d)", page, size)
	}

	page, size = ParsePaginationParams(newContext("/departments"))
	if page != DefaultPage || size != DefaultPageSize {
		t.Fatalf("expected defaults, got (%d, %d)", page, size)
	}

	page, size = ParsePaginationParams(newContext("/departments?page=-1&pageSize=junk"))
	if page != DefaultPage || size != DefaultPageSize {
		t.Fatalf("expected defaults for invalid input, got (%d, %d)", page, size)
	}
}
