package shared

// FailureKind classifies a failure envelope so the transport layer can
// choose an HTTP status without inspecting message text. It is never
// serialized; the envelope body is what clients branch on.
type FailureKind int

// Failure kinds, in rough order of specificity.
const (
	KindNone FailureKind = iota
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUnexpected
)

// Envelope is the uniform wrapper for every single-value API outcome.
// Invariants: Success=false implies Data=nil; Success=true implies
// Errors is empty. Envelopes are constructed once and never mutated.
type Envelope[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    *T       `json:"data"`
	Errors  []string `json:"errors"`

	// Kind drives HTTP status mapping and is not part of the body.
	Kind FailureKind `json:"-"`
}

// OK builds a success envelope around data.
func OK[T any](message string, data T) Envelope[T] {
	return Envelope[T]{
		Success: true,
		Message: message,
		Data:    &data,
		Errors:  []string{},
	}
}

// Fail builds a failure envelope of the given kind. Data stays nil;
// errs carries one entry per violated rule or failed check.
func Fail[T any](kind FailureKind, message string, errs ...string) Envelope[T] {
	if errs == nil {
		errs = []string{}
	}
	return Envelope[T]{
		Success: false,
		Message: message,
		Errors:  errs,
		Kind:    kind,
	}
}

// PagedEnvelope is the uniform wrapper for paged list outcomes. The
// pagination fields are derived once at construction (see NewPage) and
// hold the invariants: TotalPages = ceil(TotalRecords/PageSize),
// HasPreviousPage = PageNumber > 1, HasNextPage = PageNumber < TotalPages.
type PagedEnvelope[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    []T      `json:"data"`
	Errors  []string `json:"errors"`

	PageNumber      int   `json:"page_number"`
	PageSize        int   `json:"page_size"`
	TotalRecords    int64 `json:"total_records"`
	TotalPages      int   `json:"total_pages"`
	HasPreviousPage bool  `json:"has_previous_page"`
	HasNextPage     bool  `json:"has_next_page"`

	Kind FailureKind `json:"-"`
}

// PageParams is a normalized page request. Produced by NormalizePage;
// Number and Size are always ≥ 1 afterwards.
type PageParams struct {
	Number int
	Size   int
}

// NormalizePage applies the pagination policy: a non-positive page
// number becomes 1, a non-positive size becomes defaultSize, and size
// is clamped to maxSize.
func NormalizePage(number, size, defaultSize, maxSize int) PageParams {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = defaultSize
	}
	if size < 1 {
		size = 1
	}
	if maxSize >= 1 && size > maxSize {
		size = maxSize
	}
	return PageParams{Number: number, Size: size}
}

// NewPage builds a success paged envelope and derives the pagination
// metadata. With zero total records TotalPages is 0 and both page
// flags are false regardless of the requested page number.
func NewPage[T any](message string, items []T, page PageParams, totalRecords int64) PagedEnvelope[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := 0
	if totalRecords > 0 {
		totalPages = int((totalRecords + int64(page.Size) - 1) / int64(page.Size))
	}
	return PagedEnvelope[T]{
		Success:         true,
		Message:         message,
		Data:            items,
		Errors:          []string{},
		PageNumber:      page.Number,
		PageSize:        page.Size,
		TotalRecords:    totalRecords,
		TotalPages:      totalPages,
		HasPreviousPage: totalRecords > 0 && page.Number > 1,
		HasNextPage:     page.Number < totalPages,
	}
}

// FailPage builds a failure paged envelope. Data stays null and no
// pagination metadata is derived.
func FailPage[T any](kind FailureKind, message string, errs ...string) PagedEnvelope[T] {
	if errs == nil {
		errs = []string{}
	}
	return PagedEnvelope[T]{
		Success: false,
		Message: message,
		Errors:  errs,
		Kind:    kind,
	}
}
