package schema

import (
	"fmt"

	"github.com/Rana718/vitalgen/internal/types"
)

// DependencyGraph orders tables so every referenced table precedes the
// tables that reference it. Ties keep registration order.
type DependencyGraph struct {
	tables map[string]types.SchemaTable
	names  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		tables: make(map[string]types.SchemaTable),
	}
}

func (g *DependencyGraph) AddTable(table types.SchemaTable) {
	if _, exists := g.tables[table.Name]; !exists {
		g.names = append(g.names, table.Name)
	}
	g.tables[table.Name] = table
}

func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		table, ok := g.tables[tableName]
		if !ok {
			return fmt.Errorf("table %s is referenced but not registered", tableName)
		}

		temp[tableName] = true
		for _, dep := range table.Dependencies() {
			if dep != tableName {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	for _, tableName := range g.names {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	return order, nil
}
