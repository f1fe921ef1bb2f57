package helper

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"estate-cms/models"
)

const (
	textError = `error`
	textOk    = `ok`
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  string
	Data     interface{}
	Code     int
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
	Log        zerolog.Logger
}

// NewHTTPHelper wires the helper to gin's validator engine.
func NewHTTPHelper(log zerolog.Logger) *HTTPHelper {
	validate, trans := Validation()
	return &HTTPHelper{Validate: validate, Translator: trans, Log: log}
}

// GetStatusCode ...
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var (
		validationErr   models.ErrorValidation
		notFoundErr     models.ErrorNotFound
		unauthorizedErr models.ErrorUnauthorized
		invalidTokenErr models.ErrorInvalidToken
		forbiddenErr    models.ErrorForbidden
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &unauthorizedErr):
		return http.StatusUnauthorized
	case errors.As(err, &invalidTokenErr), errors.As(err, &forbiddenErr):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (u *HTTPHelper) getCodeType(err error) string {
	var validationErr models.ErrorValidation
	if errors.As(err, &validationErr) && validationErr.CodeType != "" {
		return validationErr.CodeType
	}

	switch u.GetStatusCode(err) {
	case http.StatusBadRequest:
		return models.CodeValidation
	case http.StatusNotFound:
		return models.CodeNotFound
	case http.StatusUnauthorized:
		return models.CodeUnauthorized
	case http.StatusForbidden:
		var forbiddenErr models.ErrorForbidden
		if errors.As(err, &forbiddenErr) {
			return models.CodeForbidden
		}
		return models.CodeInvalidToken
	default:
		return models.CodeInternalServer
	}
}

// HandleError ...
// Send the response matching a service error. Unexpected errors are logged
// and reported without their detail.
func (u *HTTPHelper) HandleError(c *gin.Context, err error) {
	code := u.GetStatusCode(err)
	message := err.Error()

	var internalErr models.ErrorInternalServer
	if code == http.StatusInternalServerError {
		u.Log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("request failed")
		if errors.As(err, &internalErr) {
			message = internalErr.Message
		} else {
			message = "Internal server error"
		}
	}

	u.SendError(c, message, u.EmptyJsonMap(), code, u.getCodeType(err))
}

// HandleBindError ...
// Send the response for a failed request binding.
func (u *HTTPHelper) HandleBindError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		u.SendValidationError(c, validationErrors)
		return
	}
	u.SendBadRequest(c, err.Error(), u.EmptyJsonMap())
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) {
	res := u.SetResponse(c, textError, message, data, code, codeType)

	u.SendResponse(res)
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) {
	u.SendError(c, message, data, http.StatusBadRequest, models.CodeValidation)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := err.Field()
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         http.StatusBadRequest,
		"code_type":    models.CodeValidation,
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) {
	u.SendError(c, message, data, http.StatusUnauthorized, models.CodeUnauthorized)
}

// SendForbiddenError ...
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, codeType string) {
	u.SendError(c, message, u.EmptyJsonMap(), http.StatusForbidden, codeType)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) {
	u.SendError(c, message, data, http.StatusNotFound, models.CodeNotFound)
}

// SendResponse ...
// Send response with the status carried in res.Code.
func (u *HTTPHelper) SendResponse(res ResponseHelper) {
	if len(res.Message) == 0 {
		res.Message = `success`
	}
	if res.Code == 0 {
		res.Code = http.StatusOK
	}

	res.C.JSON(res.Code, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// ParseID reads a numeric path parameter. A malformed id is reported as not
// found, like any other unknown identifier.
func (u *HTTPHelper) ParseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		u.SendNotFoundError(c, "Not found", u.EmptyJsonMap())
		return 0, false
	}
	return uint(id), true
}

// get pagination URL
func (u *HTTPHelper) GetPagingUrl(c *gin.Context, page, limit int) string {
	r := c.Request
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	currentURL := scheme + "://" + r.Host + r.URL.Path + "?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	return currentURL
}

// Set paginantion response
func (u *HTTPHelper) GeneratePaging(c *gin.Context, prev, next, limit, page, totalRecord int) map[string]interface{} {

	prevURL, nextURL, firstURL, lastURL := "", "", "", ""

	totalPages := int(math.Ceil(float64(totalRecord) / float64(limit)))

	if page > 1 {
		prev = page - 1
	}
	if page < totalPages {
		next = page + 1
	} else {
		next = totalPages
	}

	if totalPages >= page && page > 1 {
		prevURL = u.GetPagingUrl(c, prev, limit)
	}

	if totalPages > page {
		nextURL = u.GetPagingUrl(c, next, limit)
	}

	if totalPages >= page && page > 1 {
		firstURL = u.GetPagingUrl(c, 1, limit)
	}

	if totalPages >= page && totalPages != page {
		lastURL = u.GetPagingUrl(c, totalPages, limit)
	}

	links := map[string]interface{}{
		"previous": prevURL,
		"next":     nextURL,
		"first":    firstURL,
		"last":     lastURL,
	}

	pagination := map[string]interface{}{
		"total_records": totalRecord,
		"per_page":      limit,
		"current_page":  page,
		"total_pages":   totalPages,
		"links":         links,
	}

	return pagination
}

// PageParams reads page and limit query parameters, falling back to page 1
// and defaultLimit.
func (u *HTTPHelper) PageParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit"))
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}
