// Package types defines the dataset registry schema, the control/disease
// label vocabulary, and the per-dataset bundle types for the microbiomeHD
// ingestion pipeline.
package types
