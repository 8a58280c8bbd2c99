package tablepager

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

var _encoder = base64.RawURLEncoding

// PageToken is an opaque, URL-safe reference to a page number. It is meant
// for links of the form "?page=<token>".
type PageToken string

// NewPageToken encodes page. The first page is encoded as the empty token.
func NewPageToken(page int) PageToken {
	if page <= 1 {
		return ""
	}

	return PageToken(_encoder.EncodeToString([]byte(strconv.Itoa(page))))
}

// DecodePageToken decodes a token produced by NewPageToken. The empty token
// refers to the first page.
func DecodePageToken(token string) (int, error) {
	if len(token) == 0 {
		return 1, nil
	}

	pageBytes, err := _encoder.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("failed to decode base64 encoded page token: %w", err)
	}

	page, err := strconv.Atoi(string(pageBytes))
	if err != nil {
		return 0, fmt.Errorf("failed to decode page token value: %w", err)
	}

	if page < 1 {
		return 0, fmt.Errorf("invalid page token value %d", page)
	}

	return page, nil
}

// String - implements fmt.Stringer.
func (t PageToken) String() string {
	return string(t)
}

var _ fmt.Stringer = PageToken("")

// RawPageRequest is intended for API payloads. For proper code generation,
// inline it:
//
//	type MyFilter struct {
//	    Paging RawPageRequest `json:",inline"`
//	}
type RawPageRequest struct {
	// Page - 1-based page number. Ignored when PageToken is set.
	Page int `json:"page"`
	// PageToken - token obtained via NewPageToken.
	PageToken string `json:"pageToken"`
	// PageSize - maximum number of records per page.
	PageSize int `json:"pageSize"`
}

// Decode converts RawPageRequest into PageRequest, normalizing PageSize with
// MaxPageSize and validating PageToken.
func (r RawPageRequest) Decode() (PageRequest, error) {
	return r.DecodeMax(MaxPageSize)
}

// DecodeMax is Decode with an explicit page size limit.
func (r RawPageRequest) DecodeMax(maxPageSize int) (PageRequest, error) {
	page := max(1, r.Page)
	if r.PageToken != "" {
		var err error
		page, err = DecodePageToken(r.PageToken)
		if err != nil {
			return PageRequest{}, fmt.Errorf("cannot decode page request: %w", err)
		}
	}

	return PageRequest{
		Page:     page,
		PageSize: NormalizePageSizeMax(r.PageSize, maxPageSize),
	}, nil
}

// PageRequest addresses one page of a dataset that is windowed by the
// database instead of in memory.
type PageRequest struct {
	Page     int
	PageSize int
}

// Offset returns the number of records preceding the page.
func (r PageRequest) Offset() int {
	return (max(1, r.Page) - 1) * NormalizePageSize(r.PageSize)
}

// Apply applies OFFSET/LIMIT of the page to a gorm query.
func (r PageRequest) Apply(db *gorm.DB) *gorm.DB {
	return db.Offset(r.Offset()).Limit(NormalizePageSize(r.PageSize))
}

// Token returns the token of the page.
func (r PageRequest) Token() PageToken {
	return NewPageToken(r.Page)
}

// PageResult is a paginated result container for database windowed pages.
type PageResult[T any] struct {
	// Items result elements.
	Items []T
	// Total number of elements.
	Total int64
	// Page effective page after clamping to the total.
	Page int
	// PageSize effective page size used for the query.
	PageSize int
}

// TotalPages returns max(1, ceil(Total/PageSize)).
func (r PageResult[T]) TotalPages() int {
	return TotalPages(int(r.Total), r.PageSize)
}

// PageNumbers returns the page button sequence for the result.
func (r PageResult[T]) PageNumbers() []PageItem {
	return PageNumbers(r.TotalPages(), r.Page)
}

// Paginate counts the query, clamps the requested page to the existing
// pages and loads it. Sort is applied when non-empty.
func Paginate[T any](db *gorm.DB, req PageRequest, sort Orderings) (PageResult[T], error) {
	if len(sort) > 0 {
		if err := sort.validate(); err != nil {
			return PageResult[T]{}, fmt.Errorf("cannot paginate: %w", err)
		}
	}

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return PageResult[T]{}, fmt.Errorf("cannot paginate: %w", err)
	}

	req.PageSize = NormalizePageSize(req.PageSize)
	req.Page = ClampPage(req.Page, TotalPages(int(total), req.PageSize))

	query := db.Session(&gorm.Session{})
	if len(sort) > 0 {
		query = sort.Apply(query)
	}

	var items []T
	if err := req.Apply(query).Find(&items).Error; err != nil {
		return PageResult[T]{}, fmt.Errorf("cannot paginate: %w", err)
	}

	return PageResult[T]{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}
