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
	"github.com/fleetops/dispatch/ent/deployment"
	"github.com/fleetops/dispatch/ent/driverprofile"
	"github.com/fleetops/dispatch/ent/predicate"
	"github.com/fleetops/dispatch/ent/trip"
	"github.com/fleetops/dispatch/ent/vehicle"
)

// DeploymentQuery is the builder for querying Deployment entities.
type DeploymentQuery struct {
	config
	ctx         *QueryContext
	order       []deployment.OrderOption
	inters      []Interceptor
	predicates  []predicate.Deployment
	withTrip    *TripQuery
	withVehicle *VehicleQuery
	withDriver  *DriverProfileQuery
	modifiers   []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DeploymentQuery builder.
func (_q *DeploymentQuery) Where(ps ...predicate.Deployment) *DeploymentQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DeploymentQuery) Limit(limit int) *DeploymentQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DeploymentQuery) Offset(offset int) *DeploymentQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DeploymentQuery) Unique(unique bool) *DeploymentQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DeploymentQuery) Order(o ...deployment.OrderOption) *DeploymentQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTrip chains the current query on the "trip" edge.
func (_q *DeploymentQuery) QueryTrip() *TripQuery {
	query := (&TripClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deployment.Table, deployment.FieldID, selector),
			sqlgraph.To(trip.Table, trip.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, deployment.TripTable, deployment.TripColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVehicle chains the current query on the "vehicle" edge.
func (_q *DeploymentQuery) QueryVehicle() *VehicleQuery {
	query := (&VehicleClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deployment.Table, deployment.FieldID, selector),
			sqlgraph.To(vehicle.Table, vehicle.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deployment.VehicleTable, deployment.VehicleColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDriver chains the current query on the "driver" edge.
func (_q *DeploymentQuery) QueryDriver() *DriverProfileQuery {
	query := (&DriverProfileClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(deployment.Table, deployment.FieldID, selector),
			sqlgraph.To(driverprofile.Table, driverprofile.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, deployment.DriverTable, deployment.DriverColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Deployment entity from the query.
// Returns a *NotFoundError when no Deployment was found.
func (_q *DeploymentQuery) First(ctx context.Context) (*Deployment, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{deployment.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DeploymentQuery) FirstX(ctx context.Context) *Deployment {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Deployment ID from the query.
// Returns a *NotFoundError when no Deployment ID was found.
func (_q *DeploymentQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{deployment.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DeploymentQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Deployment entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Deployment entity is found.
// Returns a *NotFoundError when no Deployment entities are found.
func (_q *DeploymentQuery) Only(ctx context.Context) (*Deployment, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{deployment.Label}
	default:
		return nil, &NotSingularError{deployment.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DeploymentQuery) OnlyX(ctx context.Context) *Deployment {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Deployment ID in the query.
// Returns a *NotSingularError when more than one Deployment ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DeploymentQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{deployment.Label}
	default:
		err = &NotSingularError{deployment.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DeploymentQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Deployments.
func (_q *DeploymentQuery) All(ctx context.Context) ([]*Deployment, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Deployment, *DeploymentQuery]()
	return withInterceptors[[]*Deployment](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DeploymentQuery) AllX(ctx context.Context) []*Deployment {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Deployment IDs.
func (_q *DeploymentQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(deployment.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DeploymentQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DeploymentQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DeploymentQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DeploymentQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DeploymentQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DeploymentQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DeploymentQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DeploymentQuery) Clone() *DeploymentQuery {
	if _q == nil {
		return nil
	}
	return &DeploymentQuery{
		config:      _q.config,
		ctx:         _q.ctx.Clone(),
		order:       append([]deployment.OrderOption{}, _q.order...),
		inters:      append([]Interceptor{}, _q.inters...),
		predicates:  append([]predicate.Deployment{}, _q.predicates...),
		withTrip:    _q.withTrip.Clone(),
		withVehicle: _q.withVehicle.Clone(),
		withDriver:  _q.withDriver.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTrip tells the query-builder to eager-load the nodes that are connected to
// the "trip" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeploymentQuery) WithTrip(opts ...func(*TripQuery)) *DeploymentQuery {
	query := (&TripClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTrip = query
	return _q
}

// WithVehicle tells the query-builder to eager-load the nodes that are connected to
// the "vehicle" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeploymentQuery) WithVehicle(opts ...func(*VehicleQuery)) *DeploymentQuery {
	query := (&VehicleClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVehicle = query
	return _q
}

// WithDriver tells the query-builder to eager-load the nodes that are connected to
// the "driver" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DeploymentQuery) WithDriver(opts ...func(*DriverProfileQuery)) *DeploymentQuery {
	query := (&DriverProfileClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDriver = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TripID int `json:"trip_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Deployment.Query().
//		GroupBy(deployment.FieldTripID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DeploymentQuery) GroupBy(field string, fields ...string) *DeploymentGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DeploymentGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = deployment.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TripID int `json:"trip_id,omitempty"`
//	}
//
//	client.Deployment.Query().
//		Select(deployment.FieldTripID).
//		Scan(ctx, &v)
func (_q *DeploymentQuery) Select(fields ...string) *DeploymentSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DeploymentSelect{DeploymentQuery: _q}
	sbuild.label = deployment.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DeploymentSelect configured with the given aggregations.
func (_q *DeploymentQuery) Aggregate(fns ...AggregateFunc) *DeploymentSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DeploymentQuery) prepareQuery(ctx context.Context) error {
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
		if !deployment.ValidColumn(f) {
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

func (_q *DeploymentQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Deployment, error) {
	var (
		nodes       = []*Deployment{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withTrip != nil,
			_q.withVehicle != nil,
			_q.withDriver != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Deployment).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Deployment{config: _q.config}
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
	if query := _q.withTrip; query != nil {
		if err := _q.loadTrip(ctx, query, nodes, nil,
			func(n *Deployment, e *Trip) { n.Edges.Trip = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVehicle; query != nil {
		if err := _q.loadVehicle(ctx, query, nodes, nil,
			func(n *Deployment, e *Vehicle) { n.Edges.Vehicle = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDriver; query != nil {
		if err := _q.loadDriver(ctx, query, nodes, nil,
			func(n *Deployment, e *DriverProfile) { n.Edges.Driver = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DeploymentQuery) loadTrip(ctx context.Context, query *TripQuery, nodes []*Deployment, init func(*Deployment), assign func(*Deployment, *Trip)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Deployment)
	for i := range nodes {
		fk := nodes[i].TripID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(trip.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "trip_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DeploymentQuery) loadVehicle(ctx context.Context, query *VehicleQuery, nodes []*Deployment, init func(*Deployment), assign func(*Deployment, *Vehicle)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Deployment)
	for i := range nodes {
		if nodes[i].VehicleID == nil {
			continue
		}
		fk := *nodes[i].VehicleID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(vehicle.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "vehicle_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *DeploymentQuery) loadDriver(ctx context.Context, query *DriverProfileQuery, nodes []*Deployment, init func(*Deployment), assign func(*Deployment, *DriverProfile)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Deployment)
	for i := range nodes {
		if nodes[i].DriverID == nil {
			continue
		}
		fk := *nodes[i].DriverID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(driverprofile.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "driver_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *DeploymentQuery) sqlCount(ctx context.Context) (int, error) {
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

func (_q *DeploymentQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(deployment.Table, deployment.Columns, sqlgraph.NewFieldSpec(deployment.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deployment.FieldID)
		for i := range fields {
			if fields[i] != deployment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTrip != nil {
			_spec.Node.AddColumnOnce(deployment.FieldTripID)
		}
		if _q.withVehicle != nil {
			_spec.Node.AddColumnOnce(deployment.FieldVehicleID)
		}
		if _q.withDriver != nil {
			_spec.Node.AddColumnOnce(deployment.FieldDriverID)
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

func (_q *DeploymentQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(deployment.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = deployment.Columns
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
func (_q *DeploymentQuery) ForUpdate(opts ...sql.LockOption) *DeploymentQuery {
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
func (_q *DeploymentQuery) ForShare(opts ...sql.LockOption) *DeploymentQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// DeploymentGroupBy is the group-by builder for Deployment entities.
type DeploymentGroupBy struct {
	selector
	build *DeploymentQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DeploymentGroupBy) Aggregate(fns ...AggregateFunc) *DeploymentGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DeploymentGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeploymentQuery, *DeploymentGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DeploymentGroupBy) sqlScan(ctx context.Context, root *DeploymentQuery, v any) error {
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

// DeploymentSelect is the builder for selecting fields of Deployment entities.
type DeploymentSelect struct {
	*DeploymentQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DeploymentSelect) Aggregate(fns ...AggregateFunc) *DeploymentSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DeploymentSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DeploymentQuery, *DeploymentSelect](ctx, _s.DeploymentQuery, _s, _s.inters, v)
}

func (_s *DeploymentSelect) sqlScan(ctx context.Context, root *DeploymentQuery, v any) error {
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
