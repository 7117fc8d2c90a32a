// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the freight tracking system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ContainerAggregator: A domain service for deriving virtual container views
//     from the items that reference them
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
