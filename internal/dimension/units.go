package dimension

import (
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/errs"
	"github.com/upcAutoLang/rezero-dynamic-summary/internal/registry"
)

// Common renders its single argument as a template against the input record.
type Common struct{ stage }

func (*Common) Variant() Variant { return VariantCommon }
func (*Common) In() Shape        { return ShapeRecord }
func (*Common) Out() Shape       { return ShapeString }
func (u *Common) String() string { return u.describe(VariantCommon) }

func (u *Common) Exec(env registry.Env, input any) (any, error) {
	rec, err := inputRecord(VariantCommon, input)
	if err != nil {
		return nil, err
	}
	return env.Render(rec, u.args[0])
}

// EntityToString evaluates its expression with the record bound as entity.
type EntityToString struct{ stage }

func (*EntityToString) Variant() Variant { return VariantEntityToString }
func (*EntityToString) In() Shape        { return ShapeRecord }
func (*EntityToString) Out() Shape       { return ShapeString }
func (u *EntityToString) String() string { return u.describe(VariantEntityToString) }

func (u *EntityToString) Exec(env registry.Env, input any) (any, error) {
	rec, err := inputRecord(VariantEntityToString, input)
	if err != nil {
		return nil, err
	}
	out, err := u.eval(env, registry.VarEntity, rec)
	if err != nil {
		return nil, err
	}
	return outputString(VariantEntityToString, out)
}

// ListToString reduces a list to text.
type ListToString struct{ stage }

func (*ListToString) Variant() Variant { return VariantListToString }
func (*ListToString) In() Shape        { return ShapeList }
func (*ListToString) Out() Shape       { return ShapeString }
func (u *ListToString) String() string { return u.describe(VariantListToString) }

func (u *ListToString) Exec(env registry.Env, input any) (any, error) {
	list, err := inputList(VariantListToString, input)
	if err != nil {
		return nil, err
	}
	out, err := u.eval(env, registry.VarList, list)
	if err != nil {
		return nil, err
	}
	return outputString(VariantListToString, out)
}

// ListToEntity folds a list into a record, such as classify's buckets.
type ListToEntity struct{ stage }

func (*ListToEntity) Variant() Variant { return VariantListToEntity }
func (*ListToEntity) In() Shape        { return ShapeList }
func (*ListToEntity) Out() Shape       { return ShapeRecord }
func (u *ListToEntity) String() string { return u.describe(VariantListToEntity) }

func (u *ListToEntity) Exec(env registry.Env, input any) (any, error) {
	list, err := inputList(VariantListToEntity, input)
	if err != nil {
		return nil, err
	}
	out, err := u.eval(env, registry.VarList, list)
	if err != nil {
		return nil, err
	}
	return outputRecord(VariantListToEntity, out)
}

// ListAdvanced transforms a list into another list.
type ListAdvanced struct{ stage }

func (*ListAdvanced) Variant() Variant { return VariantListAdvanced }
func (*ListAdvanced) In() Shape        { return ShapeList }
func (*ListAdvanced) Out() Shape       { return ShapeList }
func (u *ListAdvanced) String() string { return u.describe(VariantListAdvanced) }

func (u *ListAdvanced) Exec(env registry.Env, input any) (any, error) {
	list, err := inputList(VariantListAdvanced, input)
	if err != nil {
		return nil, err
	}
	out, err := u.eval(env, registry.VarList, list)
	if err != nil {
		return nil, err
	}
	return outputList(VariantListAdvanced, out)
}

// EntityAdvanced transforms a record into another record.
type EntityAdvanced struct{ stage }

func (*EntityAdvanced) Variant() Variant { return VariantEntityAdvanced }
func (*EntityAdvanced) In() Shape        { return ShapeRecord }
func (*EntityAdvanced) Out() Shape       { return ShapeRecord }
func (u *EntityAdvanced) String() string { return u.describe(VariantEntityAdvanced) }

func (u *EntityAdvanced) Exec(env registry.Env, input any) (any, error) {
	rec, err := inputRecord(VariantEntityAdvanced, input)
	if err != nil {
		return nil, err
	}
	out, err := u.eval(env, registry.VarEntity, rec)
	if err != nil {
		return nil, err
	}
	return outputRecord(VariantEntityAdvanced, out)
}

// EntityToList expands a record into a list.
type EntityToList struct{ stage }

func (*EntityToList) Variant() Variant { return VariantEntityToList }
func (*EntityToList) In() Shape        { return ShapeRecord }
func (*EntityToList) Out() Shape       { return ShapeList }
func (u *EntityToList) String() string { return u.describe(VariantEntityToList) }

func (u *EntityToList) Exec(env registry.Env, input any) (any, error) {
	rec, err := inputRecord(VariantEntityToList, input)
	if err != nil {
		return nil, err
	}
	out, err := u.eval(env, registry.VarEntity, rec)
	if err != nil {
		return nil, err
	}
	return outputList(VariantEntityToList, out)
}

// OutputString returns its first argument whatever the input.
type OutputString struct{ stage }

func (*OutputString) Variant() Variant { return VariantOutputString }
func (*OutputString) In() Shape        { return ShapeAny }
func (*OutputString) Out() Shape       { return ShapeString }
func (u *OutputString) String() string { return u.describe(VariantOutputString) }

func (u *OutputString) Exec(registry.Env, any) (any, error) {
	if len(u.args) == 0 {
		return nil, &errs.ArityError{What: VariantOutputString.String() + " unit arguments", Expected: 1, Actual: 0, AtLeast: true}
	}
	return u.args[0], nil
}
