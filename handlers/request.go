package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MGIFOGOIOGPY/payment-hams/models"
)

// Bounds on inbound payloads. Together with models.MaxDepth they keep the
// sanitize/compose walk and the outbound message size bounded.
const (
	maxBodyBytes       = 64 << 10
	maxStringLen       = 500
	maxKeyLen          = 40
	maxUserInfoEntries = 6
)

var (
	errEmptyBody   = errors.New("request body is empty")
	errNotAnObject = errors.New("request body must be an object")
)

// decodeBody reads the submission into a tagged value, accepting a JSON
// body or a form-encoded one where userInfo/paymentDetails carry JSON.
func decodeBody(c *gin.Context) (models.Value, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)

	if ct := c.ContentType(); ct == "application/x-www-form-urlencoded" || ct == "multipart/form-data" {
		return decodeForm(c)
	}

	data, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return models.Value{}, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return models.Value{}, errEmptyBody
	}

	var body models.Value
	if err := json.Unmarshal(data, &body); err != nil {
		return models.Value{}, fmt.Errorf("failed to parse request body: %w", err)
	}
	if body.Kind != models.KindObject {
		return models.Value{}, errNotAnObject
	}
	return body, nil
}

func decodeForm(c *gin.Context) (models.Value, error) {
	var members []models.Member
	for _, name := range []string{"amount", "paymentMethod", "payment_method"} {
		if raw, ok := c.GetPostForm(name); ok {
			members = append(members, models.Member{Key: name, Value: models.StringValue(raw)})
		}
	}
	for _, name := range []string{"userInfo", "user_info", "paymentDetails", "payment_details"} {
		raw, ok := c.GetPostForm(name)
		if !ok {
			continue
		}
		var nested models.Value
		if err := json.Unmarshal([]byte(raw), &nested); err != nil {
			// Not JSON, keep the raw string.
			nested = models.StringValue(raw)
		}
		members = append(members, models.Member{Key: name, Value: nested})
	}
	if len(members) == 0 {
		return models.Value{}, errEmptyBody
	}
	return models.ObjectValue(members...), nil
}

// field returns the first present top-level field under any of the given
// names; camelCase and the legacy snake_case wire names are both accepted.
func field(body models.Value, names ...string) models.Value {
	for _, name := range names {
		if v, ok := body.Get(name); ok {
			return v
		}
	}
	return models.Value{}
}

// validateLimits enforces the per-value bounds over the whole payload.
func validateLimits(body models.Value) error {
	if err := checkValue(body); err != nil {
		return err
	}
	userInfo := field(body, "userInfo", "user_info")
	if userInfo.Kind == models.KindObject && len(userInfo.Obj) > maxUserInfoEntries {
		return fmt.Errorf("userInfo has %d entries, limit is %d", len(userInfo.Obj), maxUserInfoEntries)
	}
	return nil
}

func checkValue(v models.Value) error {
	switch v.Kind {
	case models.KindString:
		if len(v.Str) > maxStringLen {
			return fmt.Errorf("string value of %d chars exceeds limit of %d", len(v.Str), maxStringLen)
		}
	case models.KindArray:
		for _, elem := range v.Arr {
			if err := checkValue(elem); err != nil {
				return err
			}
		}
	case models.KindObject:
		for _, m := range v.Obj {
			if len(m.Key) > maxKeyLen {
				return fmt.Errorf("object key of %d chars exceeds limit of %d", len(m.Key), maxKeyLen)
			}
			if err := checkValue(m.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
