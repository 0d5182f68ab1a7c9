package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// ianaProtocolMap maps the IANA protocol numbers that show up in
// security rules to their common names. Unknown codes pass through
// unchanged.
var ianaProtocolMap = map[string]string{
	"1":   "ICMP",
	"6":   "TCP",
	"17":  "UDP",
	"58":  "ICMPv6",
	"all": "Todos os Protocolos",
}

func translateProtocol(code string) string {
	if name, ok := ianaProtocolMap[code]; ok {
		return name
	}
	return code
}

// formatPortRange renders the destination ports of a TCP/UDP rule.
// A single port collapses to one number; rules without port options
// (ICMP, "all") render empty.
func formatPortRange(tcp *core.TcpOptions, udp *core.UdpOptions) string {
	var portRange *core.PortRange
	switch {
	case tcp != nil:
		portRange = tcp.DestinationPortRange
	case udp != nil:
		portRange = udp.DestinationPortRange
	}
	if portRange == nil || portRange.Min == nil || portRange.Max == nil {
		return ""
	}
	if *portRange.Min == *portRange.Max {
		return fmt.Sprintf("%d", *portRange.Min)
	}
	return fmt.Sprintf("%d-%d", *portRange.Min, *portRange.Max)
}

// convertSecurityList flattens a security list into the normalized form,
// ingress rules first.
func convertSecurityList(sl core.SecurityList) SecurityList {
	rules := []SecurityRule{}
	for _, r := range sl.IngressSecurityRules {
		rules = append(rules, SecurityRule{
			Direction:           "INGRESS",
			Protocol:            translateProtocol(derefString(r.Protocol)),
			SourceOrDestination: derefString(r.Source),
			Ports:               formatPortRange(r.TcpOptions, r.UdpOptions),
			Description:         derefString(r.Description),
		})
	}
	for _, r := range sl.EgressSecurityRules {
		rules = append(rules, SecurityRule{
			Direction:           "EGRESS",
			Protocol:            translateProtocol(derefString(r.Protocol)),
			SourceOrDestination: derefString(r.Destination),
			Ports:               formatPortRange(r.TcpOptions, r.UdpOptions),
			Description:         derefString(r.Description),
		})
	}
	return SecurityList{ID: derefString(sl.Id), Name: derefString(sl.DisplayName), Rules: rules}
}

// networkEntityName resolves a route-rule target OCID to a labeled,
// human-readable name. The OCID's type discriminator selects the lookup;
// a DRG attachment needs a second hop to its DRG. Unknown types and
// failed lookups degrade to the raw OCID.
func networkEntityName(ctx context.Context, cc *ClientContext, entityID string) string {
	if entityID == "" {
		return NotAvailable
	}
	parts := strings.Split(entityID, ".")
	if len(parts) < 2 {
		return entityID
	}

	switch parts[1] {
	case "internetgateway":
		if ig, ok := optionalCall(ctx, cc.Caller, "GetInternetGateway", func(ctx context.Context) (core.GetInternetGatewayResponse, error) {
			return cc.Network.GetInternetGateway(ctx, core.GetInternetGatewayRequest{IgId: common.String(entityID)})
		}); ok {
			return labeledEntity("Internet Gateway", derefString(ig.DisplayName))
		}
	case "natgateway":
		if ng, ok := optionalCall(ctx, cc.Caller, "GetNatGateway", func(ctx context.Context) (core.GetNatGatewayResponse, error) {
			return cc.Network.GetNatGateway(ctx, core.GetNatGatewayRequest{NatGatewayId: common.String(entityID)})
		}); ok {
			return labeledEntity("NAT Gateway", derefString(ng.DisplayName))
		}
	case "servicegateway":
		if sg, ok := optionalCall(ctx, cc.Caller, "GetServiceGateway", func(ctx context.Context) (core.GetServiceGatewayResponse, error) {
			return cc.Network.GetServiceGateway(ctx, core.GetServiceGatewayRequest{ServiceGatewayId: common.String(entityID)})
		}); ok {
			return labeledEntity("Service Gateway", derefString(sg.DisplayName))
		}
	case "localpeeringgateway":
		if lpg, ok := optionalCall(ctx, cc.Caller, "GetLocalPeeringGateway", func(ctx context.Context) (core.GetLocalPeeringGatewayResponse, error) {
			return cc.Network.GetLocalPeeringGateway(ctx, core.GetLocalPeeringGatewayRequest{LocalPeeringGatewayId: common.String(entityID)})
		}); ok {
			return labeledEntity("Local Peering Gateway", derefString(lpg.DisplayName))
		}
	case "privateip":
		if pip, ok := optionalCall(ctx, cc.Caller, "GetPrivateIp", func(ctx context.Context) (core.GetPrivateIpResponse, error) {
			return cc.Network.GetPrivateIp(ctx, core.GetPrivateIpRequest{PrivateIpId: common.String(entityID)})
		}); ok {
			return labeledEntity("Private IP", derefString(pip.IpAddress))
		}
	case "drg":
		if drg, ok := optionalCall(ctx, cc.Caller, "GetDrg", func(ctx context.Context) (core.GetDrgResponse, error) {
			return cc.Network.GetDrg(ctx, core.GetDrgRequest{DrgId: common.String(entityID)})
		}); ok {
			return labeledEntity("Dynamic Routing Gateway", derefString(drg.DisplayName))
		}
	case "drgattachment":
		att, ok := optionalCall(ctx, cc.Caller, "GetDrgAttachment", func(ctx context.Context) (core.GetDrgAttachmentResponse, error) {
			return cc.Network.GetDrgAttachment(ctx, core.GetDrgAttachmentRequest{DrgAttachmentId: common.String(entityID)})
		})
		if ok && att.DrgId != nil {
			drgName := ""
			if drg, ok := optionalCall(ctx, cc.Caller, "GetDrg", func(ctx context.Context) (core.GetDrgResponse, error) {
				return cc.Network.GetDrg(ctx, core.GetDrgRequest{DrgId: att.DrgId})
			}); ok {
				drgName = derefString(drg.DisplayName)
			}
			return fmt.Sprintf("DRG Attachment: %s", drgName)
		}
	}
	return entityID
}

func labeledEntity(typeName, displayName string) string {
	if displayName == "" {
		return typeName
	}
	return fmt.Sprintf("%s: %s", typeName, displayName)
}

// convertRouteTable resolves every rule target through networkEntityName.
func convertRouteTable(ctx context.Context, cc *ClientContext, rt core.RouteTable) RouteTable {
	rules := []RouteRule{}
	for _, r := range rt.RouteRules {
		destination := derefString(r.Destination)
		if destination == "" {
			destination = derefString(r.CidrBlock)
		}
		rules = append(rules, RouteRule{
			Destination: destination,
			Target:      networkEntityName(ctx, cc, derefString(r.NetworkEntityId)),
			Description: derefString(r.Description),
		})
	}
	return RouteTable{ID: derefString(rt.Id), Name: derefString(rt.DisplayName), Rules: rules}
}

// nsgSourceDestName resolves an NSG-typed source/destination OCID to the
// group's display name. CIDRs and service labels pass through untouched.
func nsgSourceDestName(ctx context.Context, cc *ClientContext, sourceDest string) string {
	if !strings.HasPrefix(sourceDest, "ocid1.networksecuritygroup") {
		return sourceDest
	}
	nsg, ok := optionalCall(ctx, cc.Caller, "GetNetworkSecurityGroup", func(ctx context.Context) (core.GetNetworkSecurityGroupResponse, error) {
		return cc.Network.GetNetworkSecurityGroup(ctx, core.GetNetworkSecurityGroupRequest{NetworkSecurityGroupId: common.String(sourceDest)})
	})
	if !ok || nsg.DisplayName == nil {
		return sourceDest
	}
	return *nsg.DisplayName
}

// fetchNSGRules collects and normalizes the ingress and egress rules of
// one network security group, ingress first.
func fetchNSGRules(ctx context.Context, cc *ClientContext, nsgID string) []SecurityRule {
	rules := []SecurityRule{}

	directions := []core.ListNetworkSecurityGroupSecurityRulesDirectionEnum{
		core.ListNetworkSecurityGroupSecurityRulesDirectionIngress,
		core.ListNetworkSecurityGroupSecurityRulesDirectionEgress,
	}
	for _, direction := range directions {
		direction := direction
		items, ok := optionalListAllPages(ctx, cc.Caller, "ListNetworkSecurityGroupSecurityRules", func(ctx context.Context, page *string) ([]core.SecurityRule, *string, error) {
			resp, err := cc.Network.ListNetworkSecurityGroupSecurityRules(ctx, core.ListNetworkSecurityGroupSecurityRulesRequest{
				NetworkSecurityGroupId: common.String(nsgID),
				Direction:              direction,
				Page:                   page,
			})
			return resp.Items, resp.OpcNextPage, err
		})
		if !ok {
			continue
		}
		for _, r := range items {
			sourceDest := derefString(r.Destination)
			if r.Direction == core.SecurityRuleDirectionIngress {
				sourceDest = derefString(r.Source)
			}
			rules = append(rules, SecurityRule{
				Direction:           string(r.Direction),
				Protocol:            translateProtocol(derefString(r.Protocol)),
				SourceOrDestination: nsgSourceDestName(ctx, cc, sourceDest),
				Ports:               formatPortRange(r.TcpOptions, r.UdpOptions),
				Description:         derefString(r.Description),
			})
		}
	}
	return rules
}

// fetchNetworkSecurityGroup resolves one NSG with its rules.
func fetchNetworkSecurityGroup(ctx context.Context, cc *ClientContext, nsgID string) (NetworkSecurityGroup, bool) {
	nsg, ok := optionalCall(ctx, cc.Caller, "GetNetworkSecurityGroup", func(ctx context.Context) (core.GetNetworkSecurityGroupResponse, error) {
		return cc.Network.GetNetworkSecurityGroup(ctx, core.GetNetworkSecurityGroupRequest{NetworkSecurityGroupId: common.String(nsgID)})
	})
	if !ok {
		return NetworkSecurityGroup{}, false
	}
	return NetworkSecurityGroup{
		ID:    derefString(nsg.Id),
		Name:  derefString(nsg.DisplayName),
		Rules: fetchNSGRules(ctx, cc, nsgID),
	}, true
}

// collectVCNs walks every available VCN of the compartment and resolves
// its subnets, security lists, route tables, NSGs and LPGs. LPG route
// tables are named from the tables already collected for the same VCN.
func collectVCNs(ctx context.Context, cc *ClientContext, compartmentID string) ([]VCN, error) {
	vcnItems, err := listAllPages(ctx, cc.Caller, "ListVcns", func(ctx context.Context, page *string) ([]core.Vcn, *string, error) {
		resp, err := cc.Network.ListVcns(ctx, core.ListVcnsRequest{
			CompartmentId:  common.String(compartmentID),
			LifecycleState: core.VcnLifecycleStateAvailable,
			Page:           page,
		})
		return resp.Items, resp.OpcNextPage, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list VCNs: %w", err)
	}

	vcns := []VCN{}
	for _, vcnSDK := range vcnItems {
		vcn := VCN{
			ID:                    derefString(vcnSDK.Id),
			DisplayName:           derefString(vcnSDK.DisplayName),
			CIDRBlock:             derefString(vcnSDK.CidrBlock),
			Subnets:               []Subnet{},
			SecurityLists:         []SecurityList{},
			RouteTables:           []RouteTable{},
			NetworkSecurityGroups: []NetworkSecurityGroup{},
			LPGs:                  []LPG{},
		}

		if items, ok := optionalListAllPages(ctx, cc.Caller, "ListSubnets", func(ctx context.Context, page *string) ([]core.Subnet, *string, error) {
			resp, err := cc.Network.ListSubnets(ctx, core.ListSubnetsRequest{
				CompartmentId:  common.String(compartmentID),
				VcnId:          vcnSDK.Id,
				LifecycleState: core.SubnetLifecycleStateAvailable,
				Page:           page,
			})
			return resp.Items, resp.OpcNextPage, err
		}); ok {
			for _, s := range items {
				vcn.Subnets = append(vcn.Subnets, Subnet{
					ID:          derefString(s.Id),
					DisplayName: derefString(s.DisplayName),
					CIDRBlock:   derefString(s.CidrBlock),
				})
			}
		}

		if items, ok := optionalListAllPages(ctx, cc.Caller, "ListSecurityLists", func(ctx context.Context, page *string) ([]core.SecurityList, *string, error) {
			resp, err := cc.Network.ListSecurityLists(ctx, core.ListSecurityListsRequest{
				CompartmentId:  common.String(compartmentID),
				VcnId:          vcnSDK.Id,
				LifecycleState: core.SecurityListLifecycleStateAvailable,
				Page:           page,
			})
			return resp.Items, resp.OpcNextPage, err
		}); ok {
			for _, sl := range items {
				vcn.SecurityLists = append(vcn.SecurityLists, convertSecurityList(sl))
			}
		}

		routeTableNames := map[string]string{}
		if items, ok := optionalListAllPages(ctx, cc.Caller, "ListRouteTables", func(ctx context.Context, page *string) ([]core.RouteTable, *string, error) {
			resp, err := cc.Network.ListRouteTables(ctx, core.ListRouteTablesRequest{
				CompartmentId:  common.String(compartmentID),
				VcnId:          vcnSDK.Id,
				LifecycleState: core.RouteTableLifecycleStateAvailable,
				Page:           page,
			})
			return resp.Items, resp.OpcNextPage, err
		}); ok {
			for _, rt := range items {
				converted := convertRouteTable(ctx, cc, rt)
				routeTableNames[converted.ID] = converted.Name
				vcn.RouteTables = append(vcn.RouteTables, converted)
			}
		}

		if items, ok := optionalListAllPages(ctx, cc.Caller, "ListNetworkSecurityGroups", func(ctx context.Context, page *string) ([]core.NetworkSecurityGroup, *string, error) {
			resp, err := cc.Network.ListNetworkSecurityGroups(ctx, core.ListNetworkSecurityGroupsRequest{
				CompartmentId: common.String(compartmentID),
				VcnId:         vcnSDK.Id,
				Page:          page,
			})
			return resp.Items, resp.OpcNextPage, err
		}); ok {
			for _, nsg := range items {
				vcn.NetworkSecurityGroups = append(vcn.NetworkSecurityGroups, NetworkSecurityGroup{
					ID:    derefString(nsg.Id),
					Name:  derefString(nsg.DisplayName),
					Rules: fetchNSGRules(ctx, cc, derefString(nsg.Id)),
				})
			}
		}

		if items, ok := optionalListAllPages(ctx, cc.Caller, "ListLocalPeeringGateways", func(ctx context.Context, page *string) ([]core.LocalPeeringGateway, *string, error) {
			resp, err := cc.Network.ListLocalPeeringGateways(ctx, core.ListLocalPeeringGatewaysRequest{
				CompartmentId: common.String(compartmentID),
				VcnId:         vcnSDK.Id,
				Page:          page,
			})
			return resp.Items, resp.OpcNextPage, err
		}); ok {
			for _, l := range items {
				routeTableName := NotAvailable
				if name, found := routeTableNames[derefString(l.RouteTableId)]; found {
					routeTableName = name
				}
				vcn.LPGs = append(vcn.LPGs, LPG{
					ID:                    derefString(l.Id),
					DisplayName:           derefString(l.DisplayName),
					LifecycleState:        string(l.LifecycleState),
					PeeringStatus:         string(l.PeeringStatus),
					PeeringStatusDetails:  derefString(l.PeeringStatusDetails),
					PeerID:                derefString(l.PeerId),
					RouteTableID:          derefString(l.RouteTableId),
					PeerAdvertisedCIDR:    derefString(l.PeerAdvertisedCidr),
					IsCrossTenancyPeering: l.IsCrossTenancyPeering != nil && *l.IsCrossTenancyPeering,
					RouteTableName:        routeTableName,
				})
			}
		}

		vcns = append(vcns, vcn)
	}
	return vcns, nil
}
