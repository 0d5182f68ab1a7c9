package main

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/common/auth"
	"github.com/oracle/oci-go-sdk/v65/containerengine"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/identity"
	"github.com/oracle/oci-go-sdk/v65/loadbalancer"
)

// The fetchers depend on these narrow interfaces rather than on the
// concrete SDK clients, so tests can substitute stubs. The real SDK
// clients satisfy them as-is.

// ComputeAPI is the compute-service surface used by the fetchers.
type ComputeAPI interface {
	ListInstances(ctx context.Context, request core.ListInstancesRequest) (core.ListInstancesResponse, error)
	GetInstance(ctx context.Context, request core.GetInstanceRequest) (core.GetInstanceResponse, error)
	GetImage(ctx context.Context, request core.GetImageRequest) (core.GetImageResponse, error)
	ListVnicAttachments(ctx context.Context, request core.ListVnicAttachmentsRequest) (core.ListVnicAttachmentsResponse, error)
	ListBootVolumeAttachments(ctx context.Context, request core.ListBootVolumeAttachmentsRequest) (core.ListBootVolumeAttachmentsResponse, error)
	ListVolumeAttachments(ctx context.Context, request core.ListVolumeAttachmentsRequest) (core.ListVolumeAttachmentsResponse, error)
}

// NetworkAPI is the virtual-network surface used by the fetchers.
type NetworkAPI interface {
	GetVnic(ctx context.Context, request core.GetVnicRequest) (core.GetVnicResponse, error)
	GetSubnet(ctx context.Context, request core.GetSubnetRequest) (core.GetSubnetResponse, error)
	GetSecurityList(ctx context.Context, request core.GetSecurityListRequest) (core.GetSecurityListResponse, error)
	GetRouteTable(ctx context.Context, request core.GetRouteTableRequest) (core.GetRouteTableResponse, error)
	GetNetworkSecurityGroup(ctx context.Context, request core.GetNetworkSecurityGroupRequest) (core.GetNetworkSecurityGroupResponse, error)
	ListNetworkSecurityGroupSecurityRules(ctx context.Context, request core.ListNetworkSecurityGroupSecurityRulesRequest) (core.ListNetworkSecurityGroupSecurityRulesResponse, error)
	ListVcns(ctx context.Context, request core.ListVcnsRequest) (core.ListVcnsResponse, error)
	ListSubnets(ctx context.Context, request core.ListSubnetsRequest) (core.ListSubnetsResponse, error)
	ListSecurityLists(ctx context.Context, request core.ListSecurityListsRequest) (core.ListSecurityListsResponse, error)
	ListRouteTables(ctx context.Context, request core.ListRouteTablesRequest) (core.ListRouteTablesResponse, error)
	ListNetworkSecurityGroups(ctx context.Context, request core.ListNetworkSecurityGroupsRequest) (core.ListNetworkSecurityGroupsResponse, error)
	ListLocalPeeringGateways(ctx context.Context, request core.ListLocalPeeringGatewaysRequest) (core.ListLocalPeeringGatewaysResponse, error)
	ListDrgs(ctx context.Context, request core.ListDrgsRequest) (core.ListDrgsResponse, error)
	ListDrgAttachments(ctx context.Context, request core.ListDrgAttachmentsRequest) (core.ListDrgAttachmentsResponse, error)
	ListRemotePeeringConnections(ctx context.Context, request core.ListRemotePeeringConnectionsRequest) (core.ListRemotePeeringConnectionsResponse, error)
	ListCpes(ctx context.Context, request core.ListCpesRequest) (core.ListCpesResponse, error)
	GetCpeDeviceShape(ctx context.Context, request core.GetCpeDeviceShapeRequest) (core.GetCpeDeviceShapeResponse, error)
	ListIPSecConnections(ctx context.Context, request core.ListIPSecConnectionsRequest) (core.ListIPSecConnectionsResponse, error)
	ListIPSecConnectionTunnels(ctx context.Context, request core.ListIPSecConnectionTunnelsRequest) (core.ListIPSecConnectionTunnelsResponse, error)
	GetDrg(ctx context.Context, request core.GetDrgRequest) (core.GetDrgResponse, error)
	GetDrgAttachment(ctx context.Context, request core.GetDrgAttachmentRequest) (core.GetDrgAttachmentResponse, error)
	GetDrgRouteTable(ctx context.Context, request core.GetDrgRouteTableRequest) (core.GetDrgRouteTableResponse, error)
	GetInternetGateway(ctx context.Context, request core.GetInternetGatewayRequest) (core.GetInternetGatewayResponse, error)
	GetNatGateway(ctx context.Context, request core.GetNatGatewayRequest) (core.GetNatGatewayResponse, error)
	GetServiceGateway(ctx context.Context, request core.GetServiceGatewayRequest) (core.GetServiceGatewayResponse, error)
	GetLocalPeeringGateway(ctx context.Context, request core.GetLocalPeeringGatewayRequest) (core.GetLocalPeeringGatewayResponse, error)
	GetPrivateIp(ctx context.Context, request core.GetPrivateIpRequest) (core.GetPrivateIpResponse, error)
}

// BlockStorageAPI is the block-storage surface used by the fetchers.
type BlockStorageAPI interface {
	GetBootVolume(ctx context.Context, request core.GetBootVolumeRequest) (core.GetBootVolumeResponse, error)
	GetVolume(ctx context.Context, request core.GetVolumeRequest) (core.GetVolumeResponse, error)
	GetVolumeBackupPolicyAssetAssignment(ctx context.Context, request core.GetVolumeBackupPolicyAssetAssignmentRequest) (core.GetVolumeBackupPolicyAssetAssignmentResponse, error)
	GetVolumeBackupPolicy(ctx context.Context, request core.GetVolumeBackupPolicyRequest) (core.GetVolumeBackupPolicyResponse, error)
	ListVolumeGroups(ctx context.Context, request core.ListVolumeGroupsRequest) (core.ListVolumeGroupsResponse, error)
}

// LoadBalancerAPI is the load-balancer surface used by the fetchers.
type LoadBalancerAPI interface {
	ListLoadBalancers(ctx context.Context, request loadbalancer.ListLoadBalancersRequest) (loadbalancer.ListLoadBalancersResponse, error)
}

// ContainerEngineAPI is the OKE surface used by the fetchers.
type ContainerEngineAPI interface {
	ListClusters(ctx context.Context, request containerengine.ListClustersRequest) (containerengine.ListClustersResponse, error)
	ListNodePools(ctx context.Context, request containerengine.ListNodePoolsRequest) (containerengine.ListNodePoolsResponse, error)
	GetNodePool(ctx context.Context, request containerengine.GetNodePoolRequest) (containerengine.GetNodePoolResponse, error)
}

// IdentityAPI is the identity surface used for regions and compartments.
type IdentityAPI interface {
	ListCompartments(ctx context.Context, request identity.ListCompartmentsRequest) (identity.ListCompartmentsResponse, error)
	GetCompartment(ctx context.Context, request identity.GetCompartmentRequest) (identity.GetCompartmentResponse, error)
	ListRegionSubscriptions(ctx context.Context, request identity.ListRegionSubscriptionsRequest) (identity.ListRegionSubscriptionsResponse, error)
}

// AuthContext is the credential material resolved exactly once at
// process start. Resolution failure is fatal at startup, never per-call.
type AuthContext struct {
	Provider  common.ConfigurationProvider
	TenancyID string
}

// ResolveAuth resolves the configured authentication method. Supports a
// static credential profile and the host-identity (instance principal)
// token.
func ResolveAuth(cfg AuthConfig) (*AuthContext, error) {
	var provider common.ConfigurationProvider
	var err error

	switch cfg.Method {
	case "instance_principal":
		provider, err = auth.InstancePrincipalConfigurationProvider()
		if err != nil {
			return nil, fmt.Errorf("failed to create instance principal config provider: %w", err)
		}
		logger.Info("Authentication configured to use instance principal")
	default: // api_key
		if cfg.Profile != "" {
			provider = common.CustomProfileConfigProvider("", cfg.Profile)
		} else {
			provider = common.DefaultConfigProvider()
		}
		logger.Info("Authentication configured to use API key configuration file")
	}

	tenancyID, err := provider.TenancyOCID()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenancy from auth provider: %w", err)
	}

	return &AuthContext{Provider: provider, TenancyID: tenancyID}, nil
}

// ClientContext bundles the region-scoped service clients, the
// compartment-name cache and the resilient caller. It is built once per
// collection region and is safe for read-only sharing across
// concurrent tasks.
type ClientContext struct {
	Region    string
	TenancyID string

	Compute         ComputeAPI
	Network         NetworkAPI
	BlockStorage    BlockStorageAPI
	LoadBalancer    LoadBalancerAPI
	ContainerEngine ContainerEngineAPI
	Identity        IdentityAPI

	Compartments *CompartmentNameCache
	Caller       *RemoteCaller
}

// NewClientContext initializes all service clients for one region.
func NewClientContext(authCtx *AuthContext, region string, policy RetryPolicy) (*ClientContext, error) {
	computeClient, err := core.NewComputeClientWithConfigurationProvider(authCtx.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute client: %w", err)
	}
	computeClient.SetRegion(region)

	vnClient, err := core.NewVirtualNetworkClientWithConfigurationProvider(authCtx.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual network client: %w", err)
	}
	vnClient.SetRegion(region)

	bsClient, err := core.NewBlockstorageClientWithConfigurationProvider(authCtx.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create block storage client: %w", err)
	}
	bsClient.SetRegion(region)

	lbClient, err := loadbalancer.NewLoadBalancerClientWithConfigurationProvider(authCtx.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create load balancer client: %w", err)
	}
	lbClient.SetRegion(region)

	ceClient, err := containerengine.NewContainerEngineClientWithConfigurationProvider(authCtx.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create container engine client: %w", err)
	}
	ceClient.SetRegion(region)

	identityClient, err := identity.NewIdentityClientWithConfigurationProvider(authCtx.Provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}
	identityClient.SetRegion(region)

	cc := &ClientContext{
		Region:          region,
		TenancyID:       authCtx.TenancyID,
		Compute:         computeClient,
		Network:         vnClient,
		BlockStorage:    bsClient,
		LoadBalancer:    lbClient,
		ContainerEngine: ceClient,
		Identity:        identityClient,
		Caller:          NewRemoteCaller(policy),
	}
	cc.Compartments = NewCompartmentNameCache(identityClient, authCtx.TenancyID)
	return cc, nil
}
