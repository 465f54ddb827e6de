package stdfuncs

import (
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/ctyval"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register registers the general-purpose helpers.
func (m *Module) Register(r *registry.Registry) {
	r.Register("add", registry.Static(stdlib.AddFunc))
	r.Register("sub", registry.Static(stdlib.SubtractFunc))
	r.Register("upper", registry.Static(stdlib.UpperFunc))
	r.Register("lower", registry.Static(stdlib.LowerFunc))
	r.Register("trimspace", registry.Static(stdlib.TrimSpaceFunc))
	r.Register("format", registry.Static(stdlib.FormatFunc))
	r.Register("substr", registry.Static(stdlib.SubstrFunc))
	r.Register("max", registry.Static(stdlib.MaxFunc))
	r.Register("min", registry.Static(stdlib.MinFunc))
	r.Register("length", registry.Static(LengthFunc))
}

// LengthFunc counts the elements of a list, the keys of a record or the
// characters of a string.
var LengthFunc = function.New(&function.Spec{
	Description: "Returns the number of elements of a list, keys of a record or characters of a string.",
	Params: []function.Parameter{
		{
			Name:             "value",
			Type:             cty.DynamicPseudoType,
			AllowNull:        true,
			AllowDynamicType: true,
		},
	},
	Type: function.StaticReturnType(cty.Number),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		v := args[0]
		if v.IsNull() {
			return cty.Zero, nil
		}
		ty := v.Type()
		switch {
		case ty.Equals(ctyval.ListType):
			list, _ := ctyval.AsList(v)
			return cty.NumberIntVal(int64(list.Len())), nil
		case ty.Equals(ctyval.RecordType):
			rec, _ := ctyval.AsRecord(v)
			return cty.NumberIntVal(int64(rec.Len())), nil
		case ty == cty.String:
			return stdlib.Strlen(v)
		case ty.IsCollectionType() || ty.IsTupleType() || ty.IsObjectType():
			return cty.NumberIntVal(int64(v.LengthInt())), nil
		}
		return cty.NilVal, errs.TypeMismatch("length", "list, record or string", ctyval.TypeName(v))
	},
})
