// Package postgres provides the PostgreSQL implementations of the
// persistence ports in internal/store, plus the aggregate dashboard
// source. It owns connection handling, query execution and the mapping
// of driver errors onto the store error taxonomy.
package postgres
