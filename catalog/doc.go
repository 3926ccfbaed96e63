// Package catalog describes the dummyjson product-catalog resources: where
// they live and what their JSON payloads look like.
package catalog
