package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// Location tells a rule where to read its value from
type Location string

const (
	// LocationBody reads from the JSON request body
	LocationBody Location = "body"
	// LocationParams reads from the route path parameters
	LocationParams Location = "params"
)

// Predicate reports whether a field value passes a rule. present is false
// when the field is missing from its location entirely.
type Predicate func(value any, present bool) bool

// Rule is one declarative field constraint. Rules on a parameter of the form
// "base.*.field" run once per element of the "base" array in the body.
type Rule struct {
	Param    string
	Location Location
	Message  string
	Check    Predicate
}

// Body declares a rule against a JSON body field
func Body(param, message string, check Predicate) Rule {
	return Rule{Param: param, Location: LocationBody, Message: message, Check: check}
}

// PathParam declares a rule against a route path parameter
func PathParam(param, message string, check Predicate) Rule {
	return Rule{Param: param, Location: LocationParams, Message: message, Check: check}
}

// validate backs the predicate helpers. A single instance is safe for
// concurrent use.
var validate = validator.New()

// IsString passes for string values with at least minLen characters
func IsString(minLen int) Predicate {
	tag := fmt.Sprintf("min=%d", minLen)
	return func(value any, present bool) bool {
		if !present {
			return false
		}
		s, ok := value.(string)
		if !ok {
			return false
		}
		return validate.Var(s, tag) == nil
	}
}

// IsNumber passes for numeric values (or numeric strings) of at least min
func IsNumber(min float64) Predicate {
	tag := fmt.Sprintf("gte=%v", min)
	return func(value any, present bool) bool {
		if !present {
			return false
		}
		f, ok := toFloat(value)
		if !ok {
			return false
		}
		return validate.Var(f, tag) == nil
	}
}

// IsInt passes for integer values (or integer strings) of at least min
func IsInt(min int64) Predicate {
	tag := fmt.Sprintf("gte=%d", min)
	return func(value any, present bool) bool {
		if !present {
			return false
		}
		n, ok := toInt(value)
		if !ok {
			return false
		}
		return validate.Var(n, tag) == nil
	}
}

// IsOneOf passes for string values contained in options
func IsOneOf(options ...string) Predicate {
	tag := "oneof=" + strings.Join(options, " ")
	return func(value any, present bool) bool {
		if !present {
			return false
		}
		s, ok := value.(string)
		if !ok {
			return false
		}
		return validate.Var(s, tag) == nil
	}
}

// IsArray passes for arrays with at least minLen elements
func IsArray(minLen int) Predicate {
	return func(value any, present bool) bool {
		if !present {
			return false
		}
		arr, ok := value.([]any)
		if !ok {
			return false
		}
		return len(arr) >= minLen
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toInt(value any) (int64, bool) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case float64:
		n := int64(v)
		return n, float64(n) == v
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

// ValidateRequest evaluates every rule against the request and aborts with
// 400 and the full error list when any rule fails. All rules run; failures
// accumulate in declaration order.
func ValidateRequest(rules ...Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		body := readJSONBody(c)

		var errs []dto.FieldError
		for _, rule := range rules {
			switch {
			case rule.Location == LocationParams:
				raw := c.Param(rule.Param)
				if !rule.Check(raw, true) {
					value := any(raw)
					errs = append(errs, dto.FieldError{
						Value:    &value,
						Msg:      rule.Message,
						Param:    rule.Param,
						Location: string(rule.Location),
					})
				}

			case strings.Contains(rule.Param, ".*."):
				errs = append(errs, evalElementRule(body, rule)...)

			default:
				value, present := body[rule.Param]
				fieldErr := dto.FieldError{
					Msg:      rule.Message,
					Param:    rule.Param,
					Location: string(rule.Location),
				}
				if !rule.Check(value, present) {
					if present {
						fieldErr.Value = &value
					}
					errs = append(errs, fieldErr)
				}
			}
		}

		if len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.ValidationErrorResponse{Errors: errs})
			return
		}

		c.Next()
	}
}

// evalElementRule runs an element rule once per array entry. A missing or
// non-array base contributes nothing; the array-level rule reports that.
func evalElementRule(body map[string]any, rule Rule) []dto.FieldError {
	parts := strings.SplitN(rule.Param, ".*.", 2)
	base, field := parts[0], parts[1]

	arr, ok := body[base].([]any)
	if !ok {
		return nil
	}

	var errs []dto.FieldError
	for i, element := range arr {
		var value any
		var present bool
		if obj, isObj := element.(map[string]any); isObj {
			value, present = obj[field]
		}
		if !rule.Check(value, present) {
			// Present-but-invalid echoes the value; a missing field inside
			// a present element reports an explicit null.
			v := value
			errs = append(errs, dto.FieldError{
				Value:    &v,
				Msg:      rule.Message,
				Param:    fmt.Sprintf("%s[%d].%s", base, i, field),
				Location: string(rule.Location),
			})
		}
	}
	return errs
}

// readJSONBody decodes the request body into a generic map and restores the
// body so handlers can bind it again. Numbers keep full precision via
// json.Number.
func readJSONBody(c *gin.Context) map[string]any {
	if c.Request == nil || c.Request.Body == nil {
		return map[string]any{}
	}

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return map[string]any{}
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	body := map[string]any{}
	if err := decoder.Decode(&body); err != nil {
		return map[string]any{}
	}
	return body
}
