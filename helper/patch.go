package helper

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"estate-cms/models"
)

// PatchFields decodes a partial update from a JSON body or a form body into
// a map keyed by column. Only keys named in specs are taken; everything else
// in the request is ignored.
func PatchFields(c *gin.Context, specs []models.FieldSpec) (map[string]any, error) {
	switch c.ContentType() {
	case gin.MIMEMultipartPOSTForm:
		form, err := c.MultipartForm()
		if err != nil {
			return nil, models.NewValidationError("invalid form: %v", err)
		}
		return formPatch(specs, form.Value)
	case gin.MIMEPOSTForm:
		if err := c.Request.ParseForm(); err != nil {
			return nil, models.NewValidationError("invalid form: %v", err)
		}
		return formPatch(specs, c.Request.PostForm)
	default:
		raw := map[string]any{}
		if err := c.ShouldBindJSON(&raw); err != nil && !errors.Is(err, io.EOF) {
			return nil, models.NewValidationError("invalid JSON body: %v", err)
		}
		return jsonPatch(specs, raw)
	}
}

func formPatch(specs []models.FieldSpec, values url.Values) (map[string]any, error) {
	fields := map[string]any{}
	for _, spec := range specs {
		vals, ok := values[spec.Key]
		if !ok {
			continue
		}
		if spec.Kind == models.KindList {
			fields[spec.Column] = models.SplitList(vals)
			continue
		}
		raw := ""
		if len(vals) > 0 {
			raw = vals[0]
		}
		value, err := convert(spec, raw)
		if err != nil {
			return nil, err
		}
		fields[spec.Column] = value
	}
	return fields, nil
}

func jsonPatch(specs []models.FieldSpec, raw map[string]any) (map[string]any, error) {
	fields := map[string]any{}
	for _, spec := range specs {
		v, ok := raw[spec.Key]
		if !ok {
			continue
		}

		switch spec.Kind {
		case models.KindList:
			list, err := toList(spec.Key, v)
			if err != nil {
				return nil, err
			}
			fields[spec.Column] = list
		case models.KindDocument:
			doc, isDoc := v.(map[string]any)
			if !isDoc && v != nil {
				return nil, models.NewValidationError("%s must be an object", spec.Key)
			}
			fields[spec.Column] = datatypes.JSONMap(doc)
		case models.KindBool:
			if b, isBool := v.(bool); isBool {
				fields[spec.Column] = b
				continue
			}
			fallthrough
		default:
			value, err := convert(spec, scalarString(v))
			if err != nil {
				return nil, err
			}
			fields[spec.Column] = value
		}
	}
	return fields, nil
}

func convert(spec models.FieldSpec, raw string) (any, error) {
	switch spec.Kind {
	case models.KindBool:
		return models.ParseBool(raw), nil
	case models.KindInt:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, models.NewValidationError("%s must be a number", spec.Key)
		}
		return n, nil
	case models.KindDate:
		t, err := models.ParseDate(raw)
		if err != nil {
			return nil, models.NewValidationError("%s: %v", spec.Key, err)
		}
		return t, nil
	case models.KindList:
		return models.SplitList([]string{raw}), nil
	default:
		return raw, nil
	}
}

func toList(key string, v any) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return []string{}, nil
	case string:
		return models.SplitList([]string{list}), nil
	case []any:
		items := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, models.NewValidationError("%s must be a list of strings", key)
			}
			items = append(items, s)
		}
		return items, nil
	default:
		return nil, models.NewValidationError("%s must be a list of strings", key)
	}
}

func scalarString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(s)
	}
}

// FormFile returns the first file uploaded under field, or nil.
func FormFile(c *gin.Context, field string) *multipart.FileHeader {
	files := FormFiles(c, field)
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// FormFiles returns the files uploaded under field. Requests that are not
// multipart carry none.
func FormFiles(c *gin.Context, field string) []*multipart.FileHeader {
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil
	}
	form, err := c.MultipartForm()
	if err != nil || form.File == nil {
		return nil
	}
	return form.File[field]
}
