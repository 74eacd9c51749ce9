// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the routing engine. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RoutePlanner: A domain service that builds the office-to-office route plan
//     an order travels along
//   - RouteValidator: A domain service that checks scan events against the route
//     plan and the order's progress cursor
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
