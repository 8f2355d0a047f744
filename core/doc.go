// Package core contains the business logic of the logo resolution pipeline.
// It is designed to be framework-agnostic and can be used independently
// of any CLI or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (SiteSpec, LogoRecord, ExtractionResult, etc.)
// - extractor: Priority cascade finding a candidate logo URL on a page
// - imageproc: Candidate download, validation, transcoding and caching
// - placeholder: Deterministic SVG monogram generation
// - colors: Accent color extraction from processed logos
// - refresher: Orchestration of the pipeline across the site catalog
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, storage)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "logogrid-app/core/extractor"
//	    "logogrid-app/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	svc := extractor.NewService(deps, extractor.Options{UserAgent: "LogoGrid/1.0"})
//
//	// Find a logo candidate
//	result := svc.Extract(ctx, "https://example.mv")
package core
