// Package service contains the business logic.
//
// It sits between the handler and store layers.
// It receives validated data from the handler, performs
// business operations, and calls store methods to interact
// with the persisted records.
package service
