package response

import "net/http"

// Envelope is the uniform wrapper returned by every public query/command.
// Success carries data (and optionally page_info); failure carries only the
// http code and message.
type Envelope struct {
	HTTPCode int         `json:"httpCode"`
	Status   bool        `json:"status"`
	Message  string      `json:"message"`
	Data     interface{} `json:"data,omitempty"`
	PageInfo *PageInfo   `json:"page_info,omitempty"`
}

// PageInfo describes the pagination window of a list response
type PageInfo struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
}

// NewPageInfo computes page info for a list of totalCount items. TotalPages is
// the ceiling of totalCount/perPage; perPage must be positive.
func NewPageInfo(currentPage, perPage, totalCount int) *PageInfo {
	return &PageInfo{
		CurrentPage: currentPage,
		PerPage:     perPage,
		TotalCount:  totalCount,
		TotalPages:  (totalCount + perPage - 1) / perPage,
	}
}

// Success wraps data in a 200 envelope
func Success(data interface{}) *Envelope {
	return &Envelope{
		HTTPCode: http.StatusOK,
		Status:   true,
		Message:  "Success",
		Data:     data,
	}
}

// SuccessPaged wraps a list page in a 200 envelope with page info
func SuccessPaged(data interface{}, pageInfo *PageInfo) *Envelope {
	env := Success(data)
	env.PageInfo = pageInfo
	return env
}

// NotFound builds a 404 failure envelope
func NotFound(message string) *Envelope {
	return &Envelope{
		HTTPCode: http.StatusNotFound,
		Status:   false,
		Message:  message,
	}
}

// Failure builds a failure envelope with an explicit http code
func Failure(httpCode int, message string) *Envelope {
	return &Envelope{
		HTTPCode: httpCode,
		Status:   false,
		Message:  message,
	}
}

// Internal builds a 500 failure envelope from an error
func Internal(err error) *Envelope {
	return Failure(http.StatusInternalServerError, err.Error())
}
