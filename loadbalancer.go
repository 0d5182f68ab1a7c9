package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/loadbalancer"
)

// collectLoadBalancers lists the load balancers of the compartment with
// their addresses, hostnames, listeners and backend sets. The listing
// response already carries the full configuration, so no per-balancer
// detail fetch is needed. Map-backed components are sorted by name for
// stable output.
func collectLoadBalancers(ctx context.Context, cc *ClientContext, compartmentID string) ([]LoadBalancer, error) {
	items, err := listAllPages(ctx, cc.Caller, "ListLoadBalancers", func(ctx context.Context, page *string) ([]loadbalancer.LoadBalancer, *string, error) {
		resp, err := cc.LoadBalancer.ListLoadBalancers(ctx, loadbalancer.ListLoadBalancersRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		return resp.Items, resp.OpcNextPage, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list load balancers: %w", err)
	}

	balancers := []LoadBalancer{}
	for _, lb := range items {
		balancers = append(balancers, convertLoadBalancer(lb))
	}
	return balancers, nil
}

func convertLoadBalancer(lb loadbalancer.LoadBalancer) LoadBalancer {
	result := LoadBalancer{
		DisplayName:    derefString(lb.DisplayName),
		LifecycleState: string(lb.LifecycleState),
		ShapeName:      derefString(lb.ShapeName),
		IPAddresses:    []LoadBalancerIP{},
		Listeners:      []Listener{},
		BackendSets:    []BackendSet{},
		Hostnames:      []Hostname{},
	}

	for _, ip := range lb.IpAddresses {
		result.IPAddresses = append(result.IPAddresses, LoadBalancerIP{
			IPAddress: derefString(ip.IpAddress),
			IsPublic:  ip.IsPublic != nil && *ip.IsPublic,
		})
	}

	for _, name := range sortedKeys(lb.Hostnames) {
		result.Hostnames = append(result.Hostnames, Hostname{Name: derefString(lb.Hostnames[name].Name)})
	}

	for _, name := range sortedKeys(lb.Listeners) {
		listener := lb.Listeners[name]
		hostnameNames := listener.HostnameNames
		if hostnameNames == nil {
			hostnameNames = []string{}
		}
		result.Listeners = append(result.Listeners, Listener{
			Name:                  derefString(listener.Name),
			Protocol:              derefString(listener.Protocol),
			Port:                  derefInt(listener.Port),
			DefaultBackendSetName: derefString(listener.DefaultBackendSetName),
			HostnameNames:         hostnameNames,
		})
	}

	for _, name := range sortedKeys(lb.BackendSets) {
		bs := lb.BackendSets[name]
		set := BackendSet{
			Name:     derefString(bs.Name),
			Policy:   derefString(bs.Policy),
			Backends: []Backend{},
		}
		if bs.HealthChecker != nil {
			set.HealthChecker = HealthChecker{
				Protocol: derefString(bs.HealthChecker.Protocol),
				Port:     derefInt(bs.HealthChecker.Port),
				URLPath:  derefString(bs.HealthChecker.UrlPath),
			}
		}
		for _, b := range bs.Backends {
			set.Backends = append(set.Backends, Backend{
				Name:      derefString(b.Name),
				IPAddress: derefString(b.IpAddress),
				Port:      derefInt(b.Port),
				Weight:    derefInt(b.Weight),
			})
		}
		result.BackendSets = append(result.BackendSets, set)
	}

	return result
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// derefInt returns the value of a possibly-nil int pointer.
func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
