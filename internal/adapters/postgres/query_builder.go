package postgres

import (
	"fmt"
	"strings"

	"catalog-service/internal/core/domain"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId:      1,
		conditions: []string{"status = 'published'"},
		args:       make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntEquals(fieldName string, value *int) {
	if value != nil {
		qb.addCondition("%s = $%d", fieldName, *value)
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyFilters turns the request criteria into a WHERE clause plus its
// positional args. Vocabulary filters match case-insensitively and the
// type filter is widened with legacy raw variants so pre-normalization
// rows keep matching.
func applyFilters(criteria domain.FilterCriteria) (string, []interface{}) {
	qb := newQueryBuilder()

	if criteria.Search != "" {
		qb.addCondition("%s ILIKE $%d", "title", "%"+criteria.Search+"%")
	}

	if len(criteria.Operations) > 0 {
		operations := make([]string, 0, len(criteria.Operations))
		for _, op := range criteria.Operations {
			operations = append(operations, domain.NormalizeOperation(op))
		}
		qb.addCondition("lower(%s) = ANY($%d)", "operation", operations)
	}

	if len(criteria.PropertyTypes) > 0 {
		var types []string
		for _, t := range criteria.PropertyTypes {
			types = append(types, domain.ExpandTypeFilter(t)...)
		}
		qb.addCondition("lower(%s) = ANY($%d)", "property_type", types)
	}

	// States and cities form a single OR group of substring matches
	// against the comma-delimited location.
	if terms := criteria.LocationTerms(); len(terms) > 0 {
		group := make([]string, 0, len(terms))
		for _, term := range terms {
			group = append(group, fmt.Sprintf("location ILIKE $%d", qb.argId))
			qb.args = append(qb.args, "%"+term+"%")
			qb.argId++
		}
		qb.conditions = append(qb.conditions, "("+strings.Join(group, " OR ")+")")
	}

	qb.AddIntEquals("bedrooms", criteria.Bedrooms)
	qb.AddIntEquals("bathrooms", criteria.Bathrooms)

	qb.AddFloatFilter("price_numeric", criteria.PriceMin, criteria.PriceMax)
	qb.AddFloatFilter("construction_size_m2", criteria.ConstructionMin, criteria.ConstructionMax)
	qb.AddFloatFilter("lot_size_m2", criteria.LandMin, criteria.LandMax)

	return qb.build()
}
