package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

const ipsecParamsDocsLink = "https://docs.oracle.com/pt-br/iaas/Content/Network/Reference/supportedIPsecparams.htm"

// Conformance verdicts for tunnel IKE/IPSec parameters.
const (
	ipsecStatusConformant    = "Conforme a recomendação Oracle"
	ipsecStatusNonConformant = "Fora da recomendação Oracle"
	ipsecStatusUnavailable   = "Indisponível"
)

// Recommended phase-one triple. Phase two accepts either the GCM
// combined mode with no separate authenticator or the CBC cipher with
// its HMAC.
const (
	recommendedP1Encryption = "AES_256_CBC"
	recommendedP1Auth       = "SHA2_384"
	recommendedP1DHGroup    = "GROUP20"
	recommendedP2GCM        = "AES_256_GCM"
	recommendedP2CBC        = "AES_256_CBC"
	recommendedP2CBCAuth    = "HMAC_SHA2_256_128"
)

// validateIPSecParameters checks a tunnel's negotiated phase parameters
// against the Oracle recommendation. Provider-managed tunnels get their
// own verdict since there is nothing to validate; a non-conformant
// verdict carries the reference documentation link.
func validateIPSecParameters(p1 *core.TunnelPhaseOneDetails, p2 *core.TunnelPhaseTwoDetails) (status, details string) {
	if p1 == nil || p2 == nil {
		return ipsecStatusUnavailable, "Detalhes de IKE/IPSec não encontrados."
	}

	if p1.IsCustomPhaseOneConfig == nil || !*p1.IsCustomPhaseOneConfig {
		return OracleManaged, ""
	}

	p1OK := derefString(p1.CustomEncryptionAlgorithm) == recommendedP1Encryption &&
		derefString(p1.CustomAuthenticationAlgorithm) == recommendedP1Auth &&
		derefString(p1.CustomDhGroup) == recommendedP1DHGroup

	p2OK := false
	p2Encryption := derefString(p2.CustomEncryptionAlgorithm)
	switch {
	case strings.Contains(p2Encryption, "GCM"):
		p2OK = p2Encryption == recommendedP2GCM && p2.CustomAuthenticationAlgorithm == nil
	case strings.Contains(p2Encryption, "CBC"):
		p2OK = p2Encryption == recommendedP2CBC && derefString(p2.CustomAuthenticationAlgorithm) == recommendedP2CBCAuth
	}

	if p1OK && p2OK {
		return ipsecStatusConformant, ""
	}
	return ipsecStatusNonConformant, ipsecParamsDocsLink
}

// drgRouteTableName resolves a DRG route table OCID to its display
// name, degrading to the raw OCID.
func drgRouteTableName(ctx context.Context, cc *ClientContext, routeTableID string) string {
	if routeTableID == "" {
		return NotAvailable
	}
	rt, ok := optionalCall(ctx, cc.Caller, "GetDrgRouteTable", func(ctx context.Context) (core.GetDrgRouteTableResponse, error) {
		return cc.Network.GetDrgRouteTable(ctx, core.GetDrgRouteTableRequest{DrgRouteTableId: common.String(routeTableID)})
	})
	if !ok || rt.DisplayName == nil {
		return routeTableID
	}
	return *rt.DisplayName
}

// drgAttachmentNetwork extracts the attached network's OCID and type
// label from the polymorphic attachment details.
func drgAttachmentNetwork(details core.DrgAttachmentNetworkDetails) (networkID, networkType string) {
	if details == nil {
		return "", NotAvailable
	}
	networkID = derefString(details.GetId())
	switch details.(type) {
	case core.VcnDrgAttachmentNetworkDetails:
		networkType = "VCN"
	case core.IpsecTunnelDrgAttachmentNetworkDetails:
		networkType = "IPSEC_TUNNEL"
	case core.VirtualCircuitDrgAttachmentNetworkDetails:
		networkType = "VIRTUAL_CIRCUIT"
	case core.RemotePeeringConnectionDrgAttachmentNetworkDetails:
		networkType = "REMOTE_PEERING_CONNECTION"
	case core.LoopBackDrgAttachmentNetworkDetails:
		networkType = "LOOPBACK"
	default:
		networkType = NotAvailable
	}
	return networkID, networkType
}

// normalizePeeringStatus rewrites the raw "NEW" code into its
// human-readable form. Other statuses pass through.
func normalizePeeringStatus(status string) string {
	if status == "NEW" {
		return "New (not peered)"
	}
	return status
}

// collectDRGs lists the dynamic routing gateways of the compartment
// with their attachments and remote peering connections.
func collectDRGs(ctx context.Context, cc *ClientContext, compartmentID string) ([]DRG, error) {
	drgItems, err := listAllPages(ctx, cc.Caller, "ListDrgs", func(ctx context.Context, page *string) ([]core.Drg, *string, error) {
		resp, err := cc.Network.ListDrgs(ctx, core.ListDrgsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		return resp.Items, resp.OpcNextPage, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list DRGs: %w", err)
	}

	drgs := []DRG{}
	for _, drgSDK := range drgItems {
		drg := DRG{
			ID:          derefString(drgSDK.Id),
			DisplayName: derefString(drgSDK.DisplayName),
			Attachments: []DRGAttachment{},
			RPCs:        []RPC{},
		}

		if items, ok := optionalListAllPages(ctx, cc.Caller, "ListDrgAttachments", func(ctx context.Context, page *string) ([]core.DrgAttachment, *string, error) {
			resp, err := cc.Network.ListDrgAttachments(ctx, core.ListDrgAttachmentsRequest{
				CompartmentId: common.String(compartmentID),
				DrgId:         drgSDK.Id,
				Page:          page,
			})
			return resp.Items, resp.OpcNextPage, err
		}); ok {
			for _, a := range items {
				networkID, networkType := drgAttachmentNetwork(a.NetworkDetails)
				drg.Attachments = append(drg.Attachments, DRGAttachment{
					ID:             derefString(a.Id),
					DisplayName:    derefString(a.DisplayName),
					NetworkID:      networkID,
					NetworkType:    networkType,
					RouteTableID:   derefString(a.DrgRouteTableId),
					RouteTableName: drgRouteTableName(ctx, cc, derefString(a.DrgRouteTableId)),
				})
			}
		}

		if items, ok := optionalListAllPages(ctx, cc.Caller, "ListRemotePeeringConnections", func(ctx context.Context, page *string) ([]core.RemotePeeringConnection, *string, error) {
			resp, err := cc.Network.ListRemotePeeringConnections(ctx, core.ListRemotePeeringConnectionsRequest{
				CompartmentId: common.String(compartmentID),
				DrgId:         drgSDK.Id,
				Page:          page,
			})
			return resp.Items, resp.OpcNextPage, err
		}); ok {
			for _, r := range items {
				drg.RPCs = append(drg.RPCs, RPC{
					ID:             derefString(r.Id),
					DisplayName:    derefString(r.DisplayName),
					LifecycleState: string(r.LifecycleState),
					PeeringStatus:  normalizePeeringStatus(string(r.PeeringStatus)),
				})
			}
		}

		drgs = append(drgs, drg)
	}
	return drgs, nil
}

// collectCPEs lists the customer-premises devices of the compartment,
// resolving each device's vendor through its shape when one is set.
func collectCPEs(ctx context.Context, cc *ClientContext, compartmentID string) ([]CPE, error) {
	items, err := listAllPages(ctx, cc.Caller, "ListCpes", func(ctx context.Context, page *string) ([]core.Cpe, *string, error) {
		resp, err := cc.Network.ListCpes(ctx, core.ListCpesRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		return resp.Items, resp.OpcNextPage, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list CPEs: %w", err)
	}

	cpes := []CPE{}
	for _, cpe := range items {
		vendor := NotAvailable
		if cpe.CpeDeviceShapeId != nil {
			if shape, ok := optionalCall(ctx, cc.Caller, "GetCpeDeviceShape", func(ctx context.Context) (core.GetCpeDeviceShapeResponse, error) {
				return cc.Network.GetCpeDeviceShape(ctx, core.GetCpeDeviceShapeRequest{CpeDeviceShapeId: cpe.CpeDeviceShapeId})
			}); ok && shape.CpeDeviceInfo != nil && derefString(shape.CpeDeviceInfo.Vendor) != "" {
				vendor = *shape.CpeDeviceInfo.Vendor
			}
		}
		cpes = append(cpes, CPE{
			ID:          derefString(cpe.Id),
			DisplayName: derefString(cpe.DisplayName),
			IPAddress:   derefString(cpe.IpAddress),
			Vendor:      vendor,
		})
	}
	return cpes, nil
}

// collectIPSecConnections lists the IPSec connections of the
// compartment with their tunnels, phase parameters, conformance verdict
// and BGP session data. Static routes are reported only when the
// connection actually routes statically.
func collectIPSecConnections(ctx context.Context, cc *ClientContext, compartmentID string) ([]IPSecConnection, error) {
	items, err := listAllPages(ctx, cc.Caller, "ListIPSecConnections", func(ctx context.Context, page *string) ([]core.IpSecConnection, *string, error) {
		resp, err := cc.Network.ListIPSecConnections(ctx, core.ListIPSecConnectionsRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		return resp.Items, resp.OpcNextPage, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list IPSec connections: %w", err)
	}

	connections := []IPSecConnection{}
	for _, conn := range items {
		tunnels := []Tunnel{}
		routingType := "STATIC"

		if tunnelItems, ok := optionalListAllPages(ctx, cc.Caller, "ListIPSecConnectionTunnels", func(ctx context.Context, page *string) ([]core.IpSecConnectionTunnel, *string, error) {
			resp, err := cc.Network.ListIPSecConnectionTunnels(ctx, core.ListIPSecConnectionTunnelsRequest{
				IpscId: conn.Id,
				Page:   page,
			})
			return resp.Items, resp.OpcNextPage, err
		}); ok {
			for i, t := range tunnelItems {
				if i == 0 {
					routingType = string(t.Routing)
				}
				tunnels = append(tunnels, convertTunnel(t))
			}
		}

		staticRoutes := []string{}
		if routingType == "STATIC" && conn.StaticRoutes != nil {
			staticRoutes = conn.StaticRoutes
		}

		connections = append(connections, IPSecConnection{
			ID:           derefString(conn.Id),
			DisplayName:  derefString(conn.DisplayName),
			Status:       string(conn.LifecycleState),
			CpeID:        derefString(conn.CpeId),
			DrgID:        derefString(conn.DrgId),
			StaticRoutes: staticRoutes,
			Tunnels:      tunnels,
		})
	}
	return connections, nil
}

func convertTunnel(t core.IpSecConnectionTunnel) Tunnel {
	validationStatus, validationDetails := validateIPSecParameters(t.PhaseOneDetails, t.PhaseTwoDetails)

	tunnel := Tunnel{
		ID:                derefString(t.Id),
		DisplayName:       derefString(t.DisplayName),
		Status:            string(t.Status),
		CpeIP:             derefString(t.CpeIp),
		VPNOracleIP:       derefString(t.VpnIp),
		RoutingType:       string(t.Routing),
		IKEVersion:        string(t.IkeVersion),
		ValidationStatus:  validationStatus,
		ValidationDetails: validationDetails,
	}
	if tunnel.Status == "" {
		tunnel.Status = NotAvailable
	}

	p1 := PhaseOneDetails{
		AuthenticationAlgorithm: OracleManaged,
		EncryptionAlgorithm:     OracleManaged,
		DHGroup:                 OracleManaged,
	}
	if t.PhaseOneDetails != nil {
		if t.PhaseOneDetails.Lifetime != nil {
			p1.LifetimeInSeconds = *t.PhaseOneDetails.Lifetime
		}
		if t.PhaseOneDetails.IsCustomPhaseOneConfig != nil && *t.PhaseOneDetails.IsCustomPhaseOneConfig {
			p1.IsCustom = true
			p1.AuthenticationAlgorithm = derefString(t.PhaseOneDetails.CustomAuthenticationAlgorithm)
			p1.EncryptionAlgorithm = derefString(t.PhaseOneDetails.CustomEncryptionAlgorithm)
			p1.DHGroup = derefString(t.PhaseOneDetails.CustomDhGroup)
		}
	}
	tunnel.PhaseOneDetails = p1

	p2 := PhaseTwoDetails{
		AuthenticationAlgorithm: OracleManaged,
		EncryptionAlgorithm:     OracleManaged,
	}
	if t.PhaseTwoDetails != nil {
		if t.PhaseTwoDetails.Lifetime != nil {
			p2.LifetimeInSeconds = *t.PhaseTwoDetails.Lifetime
		}
		if t.PhaseTwoDetails.IsCustomPhaseTwoConfig != nil && *t.PhaseTwoDetails.IsCustomPhaseTwoConfig {
			p2.IsCustom = true
			p2.AuthenticationAlgorithm = orNotAvailable(derefString(t.PhaseTwoDetails.CustomAuthenticationAlgorithm))
			p2.EncryptionAlgorithm = orNotAvailable(derefString(t.PhaseTwoDetails.CustomEncryptionAlgorithm))
		}
	}
	tunnel.PhaseTwoDetails = p2

	if string(t.Routing) == "BGP" && t.BgpSessionInfo != nil {
		tunnel.BGPSessionInfo = &BGPSessionInfo{
			OracleBGPASN:        orNotAvailable(derefString(t.BgpSessionInfo.OracleBgpAsn)),
			CustomerBGPASN:      orNotAvailable(derefString(t.BgpSessionInfo.CustomerBgpAsn)),
			OracleInterfaceIP:   orNotAvailable(derefString(t.BgpSessionInfo.OracleInterfaceIp)),
			CustomerInterfaceIP: orNotAvailable(derefString(t.BgpSessionInfo.CustomerInterfaceIp)),
		}
	}

	return tunnel
}

// orNotAvailable substitutes the sentinel for an empty value.
func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
