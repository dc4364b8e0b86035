// Package validation contains the logic for validating
// request data.
//
// Request payload types implement Validatable; BindAndValidate bridges
// Echo's binding into that contract and converts failures into the errs
// package's 400 shape so handlers never see raw binder errors.
package validation
