package models

import (
	"fmt"
	"math"
)

// DefaultPageLength is used when a DataTables query omits "length".
const DefaultPageLength = 10

// PageRequest is the normalized form of both list request shapes.
// Search is already lowercased. A negative Length selects every remaining row.
type PageRequest struct {
	Start  int
	Length int
	Search string
}

// DataTablesQuery is the GET form: ?draw=&start=&length=&search[value]=
type DataTablesQuery struct {
	Draw   int
	Start  int
	Length int
	Search string
}

// PageNumber is a page or page size sent either as a JSON number or as a
// numeric string.
type PageNumber int

// UnmarshalJSON accepts whole numbers, numeric strings and null.
func (n *PageNumber) UnmarshalJSON(data []byte) error {
	raw, err := jsonNumberText(data)
	if err != nil {
		return err
	}
	v, ok := parseWholeNumber(raw)
	if !ok || v > math.MaxInt32 || v < math.MinInt32 {
		return fmt.Errorf("invalid page number %q", raw)
	}
	*n = PageNumber(v)
	return nil
}

// ListBuildingsRequest is the POST list form: {page, pageSize, search}.
type ListBuildingsRequest struct {
	Page     PageNumber `json:"page"`
	PageSize PageNumber `json:"pageSize"`
	Search   string     `json:"search"`
}

// IsListRequest mirrors the dispatch rule of the POST route: a body is a list
// request only when both page and pageSize are present and non-zero.
func (r ListBuildingsRequest) IsListRequest() bool {
	return r.Page != 0 && r.PageSize != 0
}

// CreateBuildingRequest carries the fields of a new building. Any id sent by the
// client is ignored.
type CreateBuildingRequest struct {
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Representative string   `json:"representative"`
	Phone          string   `json:"phone"`
	CCCD           string   `json:"cccd"`
	CCCDDate       string   `json:"cccdDate"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`
}

// UpdateBuildingRequest replaces every field of the building identified by ID.
type UpdateBuildingRequest struct {
	ID             BuildingID `json:"id"`
	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Representative string     `json:"representative"`
	Phone          string     `json:"phone"`
	CCCD           string     `json:"cccd"`
	CCCDDate       string     `json:"cccdDate"`
	Lat            *float64   `json:"lat,omitempty"`
	Lng            *float64   `json:"lng,omitempty"`
}

// ListResult is the outcome of a directory listing.
type ListResult struct {
	Total         int
	TotalFiltered int
	Page          []Building
}

// DataTablesResponse answers the GET form.
type DataTablesResponse struct {
	Draw            int        `json:"draw"`
	RecordsTotal    int        `json:"recordsTotal"`
	RecordsFiltered int        `json:"recordsFiltered"`
	Data            []Building `json:"data"`
}

// PageResponse answers the POST list form.
type PageResponse struct {
	RecordsTotal    int        `json:"recordsTotal"`
	RecordsFiltered int        `json:"recordsFiltered"`
	Data            []Building `json:"data"`
}

// DeleteBuildingResponse answers DELETE.
type DeleteBuildingResponse struct {
	Success bool     `json:"success"`
	Deleted Building `json:"deleted"`
}

// SnapshotInfo describes an uploaded directory snapshot.
type SnapshotInfo struct {
	Bucket  string `json:"bucket"`
	Key     string `json:"key"`
	Size    int64  `json:"size"`
	Records int    `json:"records"`
}
