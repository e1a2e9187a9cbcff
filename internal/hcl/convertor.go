package hcl

import (
	"context"
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/almanac/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter binds evaluated HCL expressions to Go values.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// DecodeExpression evaluates expr and decodes it into target. A null value
// leaves target untouched and reports false.
func (c *Converter) DecodeExpression(ctx context.Context, expr hcl.Expression, target any, evalCtx *hcl.EvalContext) (bool, error) {
	if expr == nil {
		return false, nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return false, diags
	}
	if val.IsNull() {
		return false, nil
	}
	if !val.IsWhollyKnown() {
		return false, fmt.Errorf("value must be known when the almanac is loaded")
	}
	if err := c.decode(ctx, val, target); err != nil {
		return false, err
	}
	return true, nil
}

// decode handles the conversion and decoding of a cty.Value into a Go pointer.
func (c *Converter) decode(ctx context.Context, val cty.Value, goVal any) error {
	logger := ctxlog.FromContext(ctx)
	valPtr := reflect.ValueOf(goVal)
	if valPtr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", goVal)
	}

	impliedType, err := gocty.ImpliedType(valPtr.Elem().Interface())
	if err != nil {
		return fmt.Errorf("cannot decode into %T: %w", goVal, err)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	if !val.Type().Equals(convertedVal.Type()) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", convertedVal.Type().FriendlyName(),
		)
	}

	return gocty.FromCtyValue(convertedVal, goVal)
}
