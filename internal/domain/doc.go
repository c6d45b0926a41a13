// Package domain contains the core business entities of the gift service:
// users, recipient profiles, generated gift suggestions and saved gifts.
// It represents the heart of the system, independent of any specific
// infrastructure or delivery mechanism.
package domain
