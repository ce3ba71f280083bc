package graphqlserver

import (
	"net/http"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"github.com/hhyeonhee/ULTRA/graphql"
	"github.com/hhyeonhee/ULTRA/model"
	"github.com/hhyeonhee/ULTRA/service/warehouse"
)

// NewSchema parses the schema against the read-only resolvers over a session.
func NewSchema(s *warehouse.Session) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{session: s})
}

// Handler wraps a schema in the standard relay HTTP handler.
func Handler(schema *gql.Schema) http.Handler {
	return &relay.Handler{Schema: schema}
}

// RootResolver is the query root. All fields are reads; mutation goes
// through the REST surface only.
type RootResolver struct {
	session *warehouse.Session
}

func (r *RootResolver) Warehouses() []*warehouseResolver {
	var out []*warehouseResolver
	for _, w := range r.session.Warehouses() {
		out = append(out, &warehouseResolver{info: w})
	}
	return out
}

// LayoutArgs matches the layout query arguments.
type LayoutArgs struct {
	Warehouse *string
}

func (r *RootResolver) Layout(args LayoutArgs) (*layoutResolver, error) {
	if args.Warehouse != nil && *args.Warehouse != "" {
		v, err := r.session.ViewOf(*args.Warehouse)
		if err != nil {
			return nil, err
		}
		return &layoutResolver{view: v}, nil
	}
	return &layoutResolver{view: r.session.View()}, nil
}

// ProductsArgs matches the products query arguments.
type ProductsArgs struct {
	Search      *string
	Category    *string
	Subcategory *string
}

func (r *RootResolver) Products(args ProductsArgs) []*productResolver {
	filter := warehouse.ProductFilter{}
	if args.Search != nil {
		filter.Search = *args.Search
	}
	if args.Category != nil {
		filter.Category = *args.Category
	}
	if args.Subcategory != nil {
		filter.SubCategory = *args.Subcategory
	}
	var out []*productResolver
	for _, p := range r.session.Products(filter) {
		out = append(out, &productResolver{p: p})
	}
	return out
}

// field resolvers

type warehouseResolver struct {
	info warehouse.WarehouseInfo
}

func (r *warehouseResolver) Name() string   { return r.info.Name }
func (r *warehouseResolver) Columns() int32 { return int32(r.info.Columns) }
func (r *warehouseResolver) Selected() bool { return r.info.Selected }

type layoutResolver struct {
	view warehouse.View
}

func (r *layoutResolver) Warehouse() string { return r.view.Warehouse }

func (r *layoutResolver) Columns() []*columnResolver {
	var out []*columnResolver
	for _, c := range r.view.Columns {
		out = append(out, &columnResolver{col: c})
	}
	return out
}

type columnResolver struct {
	col warehouse.ColumnView
}

func (r *columnResolver) Col() int32     { return int32(r.col.Col) }
func (r *columnResolver) Alias() *string { return optional(r.col.Alias) }
func (r *columnResolver) Header() string { return r.col.Header }

func (r *columnResolver) Slots() []*slotResolver {
	var out []*slotResolver
	for _, s := range r.col.Slots {
		out = append(out, &slotResolver{slot: s})
	}
	return out
}

type slotResolver struct {
	slot warehouse.SlotView
}

func (r *slotResolver) Col() int32           { return int32(r.slot.Col) }
func (r *slotResolver) Index() int32         { return int32(r.slot.Index) }
func (r *slotResolver) Empty() bool          { return r.slot.Empty }
func (r *slotResolver) ProductNo() *string   { return optional(r.slot.ProductNo) }
func (r *slotResolver) ProductName() *string { return optional(r.slot.ProductName) }
func (r *slotResolver) Qty() int32           { return int32(r.slot.Qty) }
func (r *slotResolver) Unit() *string        { return optional(r.slot.Unit) }
func (r *slotResolver) Memo() *string        { return optional(r.slot.Memo) }

type productResolver struct {
	p model.Product
}

func (r *productResolver) Number() string       { return r.p.Number }
func (r *productResolver) Name() string         { return r.p.Name }
func (r *productResolver) Attribute() *string   { return optional(r.p.Attribute) }
func (r *productResolver) Category() *string    { return optional(r.p.Category) }
func (r *productResolver) Subcategory() *string { return optional(r.p.SubCategory) }
func (r *productResolver) Unit() *string        { return optional(r.p.Unit) }
func (r *productResolver) TotalQty() int32      { return int32(r.p.TotalQty) }
func (r *productResolver) ActiveUnit() *string  { return optional(r.p.ActiveUnit) }

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
