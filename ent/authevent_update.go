// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kdiallo/rianterm/ent/authevent"
	"github.com/kdiallo/rianterm/ent/predicate"
)

// AuthEventUpdate is the builder for updating AuthEvent entities.
type AuthEventUpdate struct {
	config
	hooks    []Hook
	mutation *AuthEventMutation
}

// Where appends a list predicates to the AuthEventUpdate builder.
func (_u *AuthEventUpdate) Where(ps ...predicate.AuthEvent) *AuthEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAction sets the "action" field.
func (_u *AuthEventUpdate) SetAction(v string) *AuthEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuthEventUpdate) SetNillableAction(v *string) *AuthEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AuthEventUpdate) SetSuccess(v bool) *AuthEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AuthEventUpdate) SetNillableSuccess(v *bool) *AuthEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AuthEventUpdate) SetUserID(v string) *AuthEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AuthEventUpdate) SetNillableUserID(v *string) *AuthEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *AuthEventUpdate) ClearUserID() *AuthEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetMessage sets the "message" field.
func (_u *AuthEventUpdate) SetMessage(v string) *AuthEventUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AuthEventUpdate) SetNillableMessage(v *string) *AuthEventUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *AuthEventUpdate) ClearMessage() *AuthEventUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// Mutation returns the AuthEventMutation object of the builder.
func (_u *AuthEventUpdate) Mutation() *AuthEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuthEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuthEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuthEventUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := authevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuthEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AuthEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(authevent.Table, authevent.Columns, sqlgraph.NewFieldSpec(authevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(authevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(authevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(authevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(authevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(authevent.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(authevent.FieldMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{authevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuthEventUpdateOne is the builder for updating a single AuthEvent entity.
type AuthEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuthEventMutation
}

// SetAction sets the "action" field.
func (_u *AuthEventUpdateOne) SetAction(v string) *AuthEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuthEventUpdateOne) SetNillableAction(v *string) *AuthEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *AuthEventUpdateOne) SetSuccess(v bool) *AuthEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *AuthEventUpdateOne) SetNillableSuccess(v *bool) *AuthEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AuthEventUpdateOne) SetUserID(v string) *AuthEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AuthEventUpdateOne) SetNillableUserID(v *string) *AuthEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *AuthEventUpdateOne) ClearUserID() *AuthEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetMessage sets the "message" field.
func (_u *AuthEventUpdateOne) SetMessage(v string) *AuthEventUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *AuthEventUpdateOne) SetNillableMessage(v *string) *AuthEventUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *AuthEventUpdateOne) ClearMessage() *AuthEventUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// Mutation returns the AuthEventMutation object of the builder.
func (_u *AuthEventUpdateOne) Mutation() *AuthEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuthEventUpdate builder.
func (_u *AuthEventUpdateOne) Where(ps ...predicate.AuthEvent) *AuthEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuthEventUpdateOne) Select(field string, fields ...string) *AuthEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuthEvent entity.
func (_u *AuthEventUpdateOne) Save(ctx context.Context) (*AuthEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuthEventUpdateOne) SaveX(ctx context.Context) *AuthEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuthEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuthEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AuthEventUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := authevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "AuthEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *AuthEventUpdateOne) sqlSave(ctx context.Context) (_node *AuthEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(authevent.Table, authevent.Columns, sqlgraph.NewFieldSpec(authevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuthEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, authevent.FieldID)
		for _, f := range fields {
			if !authevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != authevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(authevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(authevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(authevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(authevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(authevent.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(authevent.FieldMessage, field.TypeString)
	}
	_node = &AuthEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{authevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
