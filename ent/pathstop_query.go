// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fleetops/dispatch/ent/path"
	"github.com/fleetops/dispatch/ent/pathstop"
	"github.com/fleetops/dispatch/ent/predicate"
	"github.com/fleetops/dispatch/ent/stop"
)

// PathStopQuery is the builder for querying PathStop entities.
type PathStopQuery struct {
	config
	ctx        *QueryContext
	order      []pathstop.OrderOption
	inters     []Interceptor
	predicates []predicate.PathStop
	withPath   *PathQuery
	withStop   *StopQuery
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PathStopQuery builder.
func (_q *PathStopQuery) Where(ps ...predicate.PathStop) *PathStopQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PathStopQuery) Limit(limit int) *PathStopQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PathStopQuery) Offset(offset int) *PathStopQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PathStopQuery) Unique(unique bool) *PathStopQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PathStopQuery) Order(o ...pathstop.OrderOption) *PathStopQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPath chains the current query on the "path" edge.
func (_q *PathStopQuery) QueryPath() *PathQuery {
	query := (&PathClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pathstop.Table, pathstop.FieldID, selector),
			sqlgraph.To(path.Table, path.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pathstop.PathTable, pathstop.PathColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryStop chains the current query on the "stop" edge.
func (_q *PathStopQuery) QueryStop() *StopQuery {
	query := (&StopClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(pathstop.Table, pathstop.FieldID, selector),
			sqlgraph.To(stop.Table, stop.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, pathstop.StopTable, pathstop.StopColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PathStop entity from the query.
// Returns a *NotFoundError when no PathStop was found.
func (_q *PathStopQuery) First(ctx context.Context) (*PathStop, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pathstop.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PathStopQuery) FirstX(ctx context.Context) *PathStop {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PathStop ID from the query.
// Returns a *NotFoundError when no PathStop ID was found.
func (_q *PathStopQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pathstop.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PathStopQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PathStop entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PathStop entity is found.
// Returns a *NotFoundError when no PathStop entities are found.
func (_q *PathStopQuery) Only(ctx context.Context) (*PathStop, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pathstop.Label}
	default:
		return nil, &NotSingularError{pathstop.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PathStopQuery) OnlyX(ctx context.Context) *PathStop {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PathStop ID in the query.
// Returns a *NotSingularError when more than one PathStop ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PathStopQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pathstop.Label}
	default:
		err = &NotSingularError{pathstop.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PathStopQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PathStops.
func (_q *PathStopQuery) All(ctx context.Context) ([]*PathStop, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PathStop, *PathStopQuery]()
	return withInterceptors[[]*PathStop](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PathStopQuery) AllX(ctx context.Context) []*PathStop {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PathStop IDs.
func (_q *PathStopQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(pathstop.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PathStopQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PathStopQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PathStopQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PathStopQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PathStopQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PathStopQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PathStopQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PathStopQuery) Clone() *PathStopQuery {
	if _q == nil {
		return nil
	}
	return &PathStopQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]pathstop.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.PathStop{}, _q.predicates...),
		withPath:   _q.withPath.Clone(),
		withStop:   _q.withStop.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPath tells the query-builder to eager-load the nodes that are connected to
// the "path" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PathStopQuery) WithPath(opts ...func(*PathQuery)) *PathStopQuery {
	query := (&PathClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPath = query
	return _q
}

// WithStop tells the query-builder to eager-load the nodes that are connected to
// the "stop" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PathStopQuery) WithStop(opts ...func(*StopQuery)) *PathStopQuery {
	query := (&StopClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withStop = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		PathID int `json:"path_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PathStop.Query().
//		GroupBy(pathstop.FieldPathID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PathStopQuery) GroupBy(field string, fields ...string) *PathStopGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PathStopGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = pathstop.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		PathID int `json:"path_id,omitempty"`
//	}
//
//	client.PathStop.Query().
//		Select(pathstop.FieldPathID).
//		Scan(ctx, &v)
func (_q *PathStopQuery) Select(fields ...string) *PathStopSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PathStopSelect{PathStopQuery: _q}
	sbuild.label = pathstop.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PathStopSelect configured with the given aggregations.
func (_q *PathStopQuery) Aggregate(fns ...AggregateFunc) *PathStopSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PathStopQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !pathstop.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PathStopQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PathStop, error) {
	var (
		nodes       = []*PathStop{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPath != nil,
			_q.withStop != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PathStop).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PathStop{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withPath; query != nil {
		if err := _q.loadPath(ctx, query, nodes, nil,
			func(n *PathStop, e *Path) { n.Edges.Path = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withStop; query != nil {
		if err := _q.loadStop(ctx, query, nodes, nil,
			func(n *PathStop, e *Stop) { n.Edges.Stop = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PathStopQuery) loadPath(ctx context.Context, query *PathQuery, nodes []*PathStop, init func(*PathStop), assign func(*PathStop, *Path)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PathStop)
	for i := range nodes {
		fk := nodes[i].PathID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(path.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "path_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PathStopQuery) loadStop(ctx context.Context, query *StopQuery, nodes []*PathStop, init func(*PathStop), assign func(*PathStop, *Stop)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PathStop)
	for i := range nodes {
		fk := nodes[i].StopID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(stop.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "stop_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *PathStopQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PathStopQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pathstop.Table, pathstop.Columns, sqlgraph.NewFieldSpec(pathstop.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pathstop.FieldID)
		for i := range fields {
			if fields[i] != pathstop.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPath != nil {
			_spec.Node.AddColumnOnce(pathstop.FieldPathID)
		}
		if _q.withStop != nil {
			_spec.Node.AddColumnOnce(pathstop.FieldStopID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PathStopQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(pathstop.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = pathstop.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *PathStopQuery) ForUpdate(opts ...sql.LockOption) *PathStopQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *PathStopQuery) ForShare(opts ...sql.LockOption) *PathStopQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// PathStopGroupBy is the group-by builder for PathStop entities.
type PathStopGroupBy struct {
	selector
	build *PathStopQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PathStopGroupBy) Aggregate(fns ...AggregateFunc) *PathStopGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PathStopGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PathStopQuery, *PathStopGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PathStopGroupBy) sqlScan(ctx context.Context, root *PathStopQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PathStopSelect is the builder for selecting fields of PathStop entities.
type PathStopSelect struct {
	*PathStopQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PathStopSelect) Aggregate(fns ...AggregateFunc) *PathStopSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PathStopSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PathStopQuery, *PathStopSelect](ctx, _s.PathStopQuery, _s, _s.inters, v)
}

func (_s *PathStopSelect) sqlScan(ctx context.Context, root *PathStopQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
