package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"freight/internal/core/domain/model/item"
	"freight/internal/pkg/errs"
)

// ContainerMember is a projection of a single item for container aggregation.
// It carries only the fields the aggregation needs, so callers can feed it
// from full aggregates or straight from read-model rows.
type ContainerMember struct {
	ContainerNumber string
	CBM             float64
	CostUSD         decimal.Decimal
	ReceivingDate   time.Time
	Status          item.Status
}

// VirtualContainer is a derived view of all items sharing a container number.
// Containers are never stored: they exist only as long as items reference
// them, and every figure below is recomputed from the member items on demand.
//
// Status reporting is explicit about heterogeneity. StatusCounts always holds
// the per-status breakdown; Status carries the shared status only when every
// member agrees, otherwise it is item.StatusUnknown and Mixed is set.
type VirtualContainer struct {
	ContainerNumber string
	ItemCount       int
	TotalCBM        float64
	TotalValueUSD   decimal.Decimal
	ReceivingDate   time.Time
	Status          item.Status
	StatusCounts    map[item.Status]int
	Mixed           bool
}

// ContainerAggregator is a domain service that derives virtual containers
// from item projections.
//
// Key responsibilities:
//   - Grouping items by container number
//   - Summing volume and declared value per container
//   - Reporting per-status membership without collapsing mixed containers
//
// Business rules:
//   - A container exists if and only if at least one item references it
//   - Items without a container number never form a container
//   - The container's receiving date is the earliest member receiving date
//   - A container with members in differing statuses is reported as mixed
type ContainerAggregator struct{}

// NewContainerAggregator creates a new ContainerAggregator instance.
func NewContainerAggregator() ContainerAggregator {
	return ContainerAggregator{}
}

// Derive groups the given members into virtual containers.
//
// Members with an empty container number are skipped: those items are still
// in the receiving flow and belong to no container. A member carrying an
// invalid status aborts the derivation, since it signals corrupt input
// rather than a business condition.
//
// The result is ordered by container number descending, so the most recently
// issued container numbers surface first.
func (a ContainerAggregator) Derive(members []ContainerMember) ([]VirtualContainer, error) {
	grouped := make(map[string]*VirtualContainer)

	for _, member := range members {
		if member.ContainerNumber == "" {
			continue
		}

		if err := member.Status.Validate(); err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("status", err)
		}

		container, ok := grouped[member.ContainerNumber]
		if !ok {
			container = &VirtualContainer{
				ContainerNumber: member.ContainerNumber,
				TotalValueUSD:   decimal.Zero,
				ReceivingDate:   member.ReceivingDate,
				StatusCounts:    make(map[item.Status]int),
			}
			grouped[member.ContainerNumber] = container
		}

		container.ItemCount++
		container.TotalCBM += member.CBM
		container.TotalValueUSD = container.TotalValueUSD.Add(member.CostUSD)
		container.StatusCounts[member.Status]++

		if member.ReceivingDate.Before(container.ReceivingDate) {
			container.ReceivingDate = member.ReceivingDate
		}
	}

	containers := make([]VirtualContainer, 0, len(grouped))
	for _, container := range grouped {
		container.Status, container.Mixed = resolveStatus(container.StatusCounts)
		containers = append(containers, *container)
	}

	sort.Slice(containers, func(i, j int) bool {
		return containers[i].ContainerNumber > containers[j].ContainerNumber
	})

	return containers, nil
}

// resolveStatus collapses a status breakdown to a single status when all
// members agree. For mixed containers it returns StatusUnknown and true.
func resolveStatus(counts map[item.Status]int) (item.Status, bool) {
	if len(counts) != 1 {
		return item.StatusUnknown, true
	}

	for status := range counts {
		return status, false
	}

	return item.StatusUnknown, true
}
