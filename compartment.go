package main

import (
	"context"
	"sort"
	"sync"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// RootCompartmentName labels the tenancy root in listings and lookups.
const RootCompartmentName = "Raiz (Tenancy)"

// CompartmentNameCache provides thread-safe caching for compartment
// name resolution. Initialized once per client context; concurrent
// tasks share it read-mostly.
type CompartmentNameCache struct {
	mu        sync.RWMutex
	cache     map[string]string // OCID -> Name
	client    IdentityAPI
	tenancyID string
}

// NewCompartmentNameCache creates a new compartment name cache instance
func NewCompartmentNameCache(client IdentityAPI, tenancyID string) *CompartmentNameCache {
	return &CompartmentNameCache{
		cache:     make(map[string]string),
		client:    client,
		tenancyID: tenancyID,
	}
}

// GetCompartmentName retrieves the compartment name for a given OCID
// with caching. The tenancy root resolves to its fixed label; a failed
// lookup degrades to "N/A".
func (c *CompartmentNameCache) GetCompartmentName(ctx context.Context, compartmentOCID string) string {
	if compartmentOCID == c.tenancyID {
		return RootCompartmentName
	}

	c.mu.RLock()
	if name, exists := c.cache[compartmentOCID]; exists {
		c.mu.RUnlock()
		return name
	}
	c.mu.RUnlock()

	name := c.fetchCompartmentName(ctx, compartmentOCID)

	c.mu.Lock()
	c.cache[compartmentOCID] = name
	c.mu.Unlock()

	return name
}

func (c *CompartmentNameCache) fetchCompartmentName(ctx context.Context, compartmentOCID string) string {
	request := identity.GetCompartmentRequest{
		CompartmentId: common.String(compartmentOCID),
	}

	response, err := c.client.GetCompartment(ctx, request)
	if err != nil {
		logger.Debug("Failed to get compartment name for OCID %s: %v", compartmentOCID, err)
		return NotAvailable
	}
	if response.Name != nil {
		return *response.Name
	}
	return NotAvailable
}

// ListRegions returns the subscribed regions of the tenancy that are
// ready for use.
func ListRegions(ctx context.Context, client IdentityAPI, tenancyID string) ([]RegionInfo, error) {
	resp, err := client.ListRegionSubscriptions(ctx, identity.ListRegionSubscriptionsRequest{
		TenancyId: common.String(tenancyID),
	})
	if err != nil {
		return nil, err
	}

	regions := []RegionInfo{}
	for _, r := range resp.Items {
		if r.Status != identity.RegionSubscriptionStatusReady {
			continue
		}
		region := RegionInfo{}
		if r.RegionKey != nil {
			region.Key = *r.RegionKey
		}
		if r.RegionName != nil {
			region.Name = *r.RegionName
		}
		regions = append(regions, region)
	}
	return regions, nil
}

// ListCompartmentTree returns every active compartment of the tenancy
// as a depth-first, level-annotated list, children sorted by name, with
// the tenancy root first.
func ListCompartmentTree(ctx context.Context, client IdentityAPI, tenancyID string) ([]CompartmentInfo, error) {
	var all []identity.Compartment

	request := identity.ListCompartmentsRequest{
		CompartmentId:          common.String(tenancyID),
		CompartmentIdInSubtree: common.Bool(true),
		AccessLevel:            identity.ListCompartmentsAccessLevelAccessible,
		LifecycleState:         identity.CompartmentLifecycleStateActive,
	}

	for {
		response, err := client.ListCompartments(ctx, request)
		if err != nil {
			return nil, err
		}
		all = append(all, response.Items...)
		if response.OpcNextPage == nil {
			break
		}
		request.Page = response.OpcNextPage
	}

	byID := make(map[string]identity.Compartment, len(all))
	children := map[string][]string{tenancyID: {}}
	for _, comp := range all {
		if comp.Id == nil {
			continue
		}
		byID[*comp.Id] = comp
		if _, ok := children[*comp.Id]; !ok {
			children[*comp.Id] = []string{}
		}
	}
	for _, comp := range all {
		if comp.Id == nil || comp.CompartmentId == nil {
			continue
		}
		if _, ok := children[*comp.CompartmentId]; ok {
			children[*comp.CompartmentId] = append(children[*comp.CompartmentId], *comp.Id)
		}
	}

	var buildTree func(parentID string, level int) []CompartmentInfo
	buildTree = func(parentID string, level int) []CompartmentInfo {
		ids := append([]string{}, children[parentID]...)
		sort.Slice(ids, func(i, j int) bool {
			return derefString(byID[ids[i]].Name) < derefString(byID[ids[j]].Name)
		})
		var tree []CompartmentInfo
		for _, id := range ids {
			tree = append(tree, CompartmentInfo{
				ID:    id,
				Name:  derefString(byID[id].Name),
				Level: level,
			})
			tree = append(tree, buildTree(id, level+1)...)
		}
		return tree
	}

	result := []CompartmentInfo{{ID: tenancyID, Name: RootCompartmentName, Level: 0}}
	result = append(result, buildTree(tenancyID, 1)...)
	return result, nil
}

// derefString returns the value of a possibly-nil string pointer.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
