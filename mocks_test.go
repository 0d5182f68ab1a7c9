package main

import (
	"context"
	"time"

	"github.com/oracle/oci-go-sdk/v65/containerengine"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/identity"
	"github.com/oracle/oci-go-sdk/v65/loadbalancer"
)

// Stub clients with function fields. A nil field returns the zero
// response, which reads as "nothing there" to the fetchers.

type stubCompute struct {
	listInstances             func(ctx context.Context, request core.ListInstancesRequest) (core.ListInstancesResponse, error)
	getInstance               func(ctx context.Context, request core.GetInstanceRequest) (core.GetInstanceResponse, error)
	getImage                  func(ctx context.Context, request core.GetImageRequest) (core.GetImageResponse, error)
	listVnicAttachments       func(ctx context.Context, request core.ListVnicAttachmentsRequest) (core.ListVnicAttachmentsResponse, error)
	listBootVolumeAttachments func(ctx context.Context, request core.ListBootVolumeAttachmentsRequest) (core.ListBootVolumeAttachmentsResponse, error)
	listVolumeAttachments     func(ctx context.Context, request core.ListVolumeAttachmentsRequest) (core.ListVolumeAttachmentsResponse, error)
}

func (s *stubCompute) ListInstances(ctx context.Context, request core.ListInstancesRequest) (core.ListInstancesResponse, error) {
	if s.listInstances != nil {
		return s.listInstances(ctx, request)
	}
	return core.ListInstancesResponse{}, nil
}

func (s *stubCompute) GetInstance(ctx context.Context, request core.GetInstanceRequest) (core.GetInstanceResponse, error) {
	if s.getInstance != nil {
		return s.getInstance(ctx, request)
	}
	return core.GetInstanceResponse{}, nil
}

func (s *stubCompute) GetImage(ctx context.Context, request core.GetImageRequest) (core.GetImageResponse, error) {
	if s.getImage != nil {
		return s.getImage(ctx, request)
	}
	return core.GetImageResponse{}, nil
}

func (s *stubCompute) ListVnicAttachments(ctx context.Context, request core.ListVnicAttachmentsRequest) (core.ListVnicAttachmentsResponse, error) {
	if s.listVnicAttachments != nil {
		return s.listVnicAttachments(ctx, request)
	}
	return core.ListVnicAttachmentsResponse{}, nil
}

func (s *stubCompute) ListBootVolumeAttachments(ctx context.Context, request core.ListBootVolumeAttachmentsRequest) (core.ListBootVolumeAttachmentsResponse, error) {
	if s.listBootVolumeAttachments != nil {
		return s.listBootVolumeAttachments(ctx, request)
	}
	return core.ListBootVolumeAttachmentsResponse{}, nil
}

func (s *stubCompute) ListVolumeAttachments(ctx context.Context, request core.ListVolumeAttachmentsRequest) (core.ListVolumeAttachmentsResponse, error) {
	if s.listVolumeAttachments != nil {
		return s.listVolumeAttachments(ctx, request)
	}
	return core.ListVolumeAttachmentsResponse{}, nil
}

type stubNetwork struct {
	getVnic                               func(ctx context.Context, request core.GetVnicRequest) (core.GetVnicResponse, error)
	getSubnet                             func(ctx context.Context, request core.GetSubnetRequest) (core.GetSubnetResponse, error)
	getSecurityList                       func(ctx context.Context, request core.GetSecurityListRequest) (core.GetSecurityListResponse, error)
	getRouteTable                         func(ctx context.Context, request core.GetRouteTableRequest) (core.GetRouteTableResponse, error)
	getNetworkSecurityGroup               func(ctx context.Context, request core.GetNetworkSecurityGroupRequest) (core.GetNetworkSecurityGroupResponse, error)
	listNetworkSecurityGroupSecurityRules func(ctx context.Context, request core.ListNetworkSecurityGroupSecurityRulesRequest) (core.ListNetworkSecurityGroupSecurityRulesResponse, error)
	listVcns                              func(ctx context.Context, request core.ListVcnsRequest) (core.ListVcnsResponse, error)
	listSubnets                           func(ctx context.Context, request core.ListSubnetsRequest) (core.ListSubnetsResponse, error)
	listSecurityLists                     func(ctx context.Context, request core.ListSecurityListsRequest) (core.ListSecurityListsResponse, error)
	listRouteTables                       func(ctx context.Context, request core.ListRouteTablesRequest) (core.ListRouteTablesResponse, error)
	listNetworkSecurityGroups             func(ctx context.Context, request core.ListNetworkSecurityGroupsRequest) (core.ListNetworkSecurityGroupsResponse, error)
	listLocalPeeringGateways              func(ctx context.Context, request core.ListLocalPeeringGatewaysRequest) (core.ListLocalPeeringGatewaysResponse, error)
	listDrgs                              func(ctx context.Context, request core.ListDrgsRequest) (core.ListDrgsResponse, error)
	listDrgAttachments                    func(ctx context.Context, request core.ListDrgAttachmentsRequest) (core.ListDrgAttachmentsResponse, error)
	listRemotePeeringConnections          func(ctx context.Context, request core.ListRemotePeeringConnectionsRequest) (core.ListRemotePeeringConnectionsResponse, error)
	listCpes                              func(ctx context.Context, request core.ListCpesRequest) (core.ListCpesResponse, error)
	getCpeDeviceShape                     func(ctx context.Context, request core.GetCpeDeviceShapeRequest) (core.GetCpeDeviceShapeResponse, error)
	listIPSecConnections                  func(ctx context.Context, request core.ListIPSecConnectionsRequest) (core.ListIPSecConnectionsResponse, error)
	listIPSecConnectionTunnels            func(ctx context.Context, request core.ListIPSecConnectionTunnelsRequest) (core.ListIPSecConnectionTunnelsResponse, error)
	getDrg                                func(ctx context.Context, request core.GetDrgRequest) (core.GetDrgResponse, error)
	getDrgAttachment                      func(ctx context.Context, request core.GetDrgAttachmentRequest) (core.GetDrgAttachmentResponse, error)
	getDrgRouteTable                      func(ctx context.Context, request core.GetDrgRouteTableRequest) (core.GetDrgRouteTableResponse, error)
	getInternetGateway                    func(ctx context.Context, request core.GetInternetGatewayRequest) (core.GetInternetGatewayResponse, error)
	getNatGateway                         func(ctx context.Context, request core.GetNatGatewayRequest) (core.GetNatGatewayResponse, error)
	getServiceGateway                     func(ctx context.Context, request core.GetServiceGatewayRequest) (core.GetServiceGatewayResponse, error)
	getLocalPeeringGateway                func(ctx context.Context, request core.GetLocalPeeringGatewayRequest) (core.GetLocalPeeringGatewayResponse, error)
	getPrivateIp                          func(ctx context.Context, request core.GetPrivateIpRequest) (core.GetPrivateIpResponse, error)
}

func (s *stubNetwork) GetVnic(ctx context.Context, request core.GetVnicRequest) (core.GetVnicResponse, error) {
	if s.getVnic != nil {
		return s.getVnic(ctx, request)
	}
	return core.GetVnicResponse{}, nil
}

func (s *stubNetwork) GetSubnet(ctx context.Context, request core.GetSubnetRequest) (core.GetSubnetResponse, error) {
	if s.getSubnet != nil {
		return s.getSubnet(ctx, request)
	}
	return core.GetSubnetResponse{}, nil
}

func (s *stubNetwork) GetSecurityList(ctx context.Context, request core.GetSecurityListRequest) (core.GetSecurityListResponse, error) {
	if s.getSecurityList != nil {
		return s.getSecurityList(ctx, request)
	}
	return core.GetSecurityListResponse{}, nil
}

func (s *stubNetwork) GetRouteTable(ctx context.Context, request core.GetRouteTableRequest) (core.GetRouteTableResponse, error) {
	if s.getRouteTable != nil {
		return s.getRouteTable(ctx, request)
	}
	return core.GetRouteTableResponse{}, nil
}

func (s *stubNetwork) GetNetworkSecurityGroup(ctx context.Context, request core.GetNetworkSecurityGroupRequest) (core.GetNetworkSecurityGroupResponse, error) {
	if s.getNetworkSecurityGroup != nil {
		return s.getNetworkSecurityGroup(ctx, request)
	}
	return core.GetNetworkSecurityGroupResponse{}, nil
}

func (s *stubNetwork) ListNetworkSecurityGroupSecurityRules(ctx context.Context, request core.ListNetworkSecurityGroupSecurityRulesRequest) (core.ListNetworkSecurityGroupSecurityRulesResponse, error) {
	if s.listNetworkSecurityGroupSecurityRules != nil {
		return s.listNetworkSecurityGroupSecurityRules(ctx, request)
	}
	return core.ListNetworkSecurityGroupSecurityRulesResponse{}, nil
}

func (s *stubNetwork) ListVcns(ctx context.Context, request core.ListVcnsRequest) (core.ListVcnsResponse, error) {
	if s.listVcns != nil {
		return s.listVcns(ctx, request)
	}
	return core.ListVcnsResponse{}, nil
}

func (s *stubNetwork) ListSubnets(ctx context.Context, request core.ListSubnetsRequest) (core.ListSubnetsResponse, error) {
	if s.listSubnets != nil {
		return s.listSubnets(ctx, request)
	}
	return core.ListSubnetsResponse{}, nil
}

func (s *stubNetwork) ListSecurityLists(ctx context.Context, request core.ListSecurityListsRequest) (core.ListSecurityListsResponse, error) {
	if s.listSecurityLists != nil {
		return s.listSecurityLists(ctx, request)
	}
	return core.ListSecurityListsResponse{}, nil
}

func (s *stubNetwork) ListRouteTables(ctx context.Context, request core.ListRouteTablesRequest) (core.ListRouteTablesResponse, error) {
	if s.listRouteTables != nil {
		return s.listRouteTables(ctx, request)
	}
	return core.ListRouteTablesResponse{}, nil
}

func (s *stubNetwork) ListNetworkSecurityGroups(ctx context.Context, request core.ListNetworkSecurityGroupsRequest) (core.ListNetworkSecurityGroupsResponse, error) {
	if s.listNetworkSecurityGroups != nil {
		return s.listNetworkSecurityGroups(ctx, request)
	}
	return core.ListNetworkSecurityGroupsResponse{}, nil
}

func (s *stubNetwork) ListLocalPeeringGateways(ctx context.Context, request core.ListLocalPeeringGatewaysRequest) (core.ListLocalPeeringGatewaysResponse, error) {
	if s.listLocalPeeringGateways != nil {
		return s.listLocalPeeringGateways(ctx, request)
	}
	return core.ListLocalPeeringGatewaysResponse{}, nil
}

func (s *stubNetwork) ListDrgs(ctx context.Context, request core.ListDrgsRequest) (core.ListDrgsResponse, error) {
	if s.listDrgs != nil {
		return s.listDrgs(ctx, request)
	}
	return core.ListDrgsResponse{}, nil
}

func (s *stubNetwork) ListDrgAttachments(ctx context.Context, request core.ListDrgAttachmentsRequest) (core.ListDrgAttachmentsResponse, error) {
	if s.listDrgAttachments != nil {
		return s.listDrgAttachments(ctx, request)
	}
	return core.ListDrgAttachmentsResponse{}, nil
}

func (s *stubNetwork) ListRemotePeeringConnections(ctx context.Context, request core.ListRemotePeeringConnectionsRequest) (core.ListRemotePeeringConnectionsResponse, error) {
	if s.listRemotePeeringConnections != nil {
		return s.listRemotePeeringConnections(ctx, request)
	}
	return core.ListRemotePeeringConnectionsResponse{}, nil
}

func (s *stubNetwork) ListCpes(ctx context.Context, request core.ListCpesRequest) (core.ListCpesResponse, error) {
	if s.listCpes != nil {
		return s.listCpes(ctx, request)
	}
	return core.ListCpesResponse{}, nil
}

func (s *stubNetwork) GetCpeDeviceShape(ctx context.Context, request core.GetCpeDeviceShapeRequest) (core.GetCpeDeviceShapeResponse, error) {
	if s.getCpeDeviceShape != nil {
		return s.getCpeDeviceShape(ctx, request)
	}
	return core.GetCpeDeviceShapeResponse{}, nil
}

func (s *stubNetwork) ListIPSecConnections(ctx context.Context, request core.ListIPSecConnectionsRequest) (core.ListIPSecConnectionsResponse, error) {
	if s.listIPSecConnections != nil {
		return s.listIPSecConnections(ctx, request)
	}
	return core.ListIPSecConnectionsResponse{}, nil
}

func (s *stubNetwork) ListIPSecConnectionTunnels(ctx context.Context, request core.ListIPSecConnectionTunnelsRequest) (core.ListIPSecConnectionTunnelsResponse, error) {
	if s.listIPSecConnectionTunnels != nil {
		return s.listIPSecConnectionTunnels(ctx, request)
	}
	return core.ListIPSecConnectionTunnelsResponse{}, nil
}

func (s *stubNetwork) GetDrg(ctx context.Context, request core.GetDrgRequest) (core.GetDrgResponse, error) {
	if s.getDrg != nil {
		return s.getDrg(ctx, request)
	}
	return core.GetDrgResponse{}, nil
}

func (s *stubNetwork) GetDrgAttachment(ctx context.Context, request core.GetDrgAttachmentRequest) (core.GetDrgAttachmentResponse, error) {
	if s.getDrgAttachment != nil {
		return s.getDrgAttachment(ctx, request)
	}
	return core.GetDrgAttachmentResponse{}, nil
}

func (s *stubNetwork) GetDrgRouteTable(ctx context.Context, request core.GetDrgRouteTableRequest) (core.GetDrgRouteTableResponse, error) {
	if s.getDrgRouteTable != nil {
		return s.getDrgRouteTable(ctx, request)
	}
	return core.GetDrgRouteTableResponse{}, nil
}

func (s *stubNetwork) GetInternetGateway(ctx context.Context, request core.GetInternetGatewayRequest) (core.GetInternetGatewayResponse, error) {
	if s.getInternetGateway != nil {
		return s.getInternetGateway(ctx, request)
	}
	return core.GetInternetGatewayResponse{}, nil
}

func (s *stubNetwork) GetNatGateway(ctx context.Context, request core.GetNatGatewayRequest) (core.GetNatGatewayResponse, error) {
	if s.getNatGateway != nil {
		return s.getNatGateway(ctx, request)
	}
	return core.GetNatGatewayResponse{}, nil
}

func (s *stubNetwork) GetServiceGateway(ctx context.Context, request core.GetServiceGatewayRequest) (core.GetServiceGatewayResponse, error) {
	if s.getServiceGateway != nil {
		return s.getServiceGateway(ctx, request)
	}
	return core.GetServiceGatewayResponse{}, nil
}

func (s *stubNetwork) GetLocalPeeringGateway(ctx context.Context, request core.GetLocalPeeringGatewayRequest) (core.GetLocalPeeringGatewayResponse, error) {
	if s.getLocalPeeringGateway != nil {
		return s.getLocalPeeringGateway(ctx, request)
	}
	return core.GetLocalPeeringGatewayResponse{}, nil
}

func (s *stubNetwork) GetPrivateIp(ctx context.Context, request core.GetPrivateIpRequest) (core.GetPrivateIpResponse, error) {
	if s.getPrivateIp != nil {
		return s.getPrivateIp(ctx, request)
	}
	return core.GetPrivateIpResponse{}, nil
}

type stubBlockStorage struct {
	getBootVolume                        func(ctx context.Context, request core.GetBootVolumeRequest) (core.GetBootVolumeResponse, error)
	getVolume                            func(ctx context.Context, request core.GetVolumeRequest) (core.GetVolumeResponse, error)
	getVolumeBackupPolicyAssetAssignment func(ctx context.Context, request core.GetVolumeBackupPolicyAssetAssignmentRequest) (core.GetVolumeBackupPolicyAssetAssignmentResponse, error)
	getVolumeBackupPolicy                func(ctx context.Context, request core.GetVolumeBackupPolicyRequest) (core.GetVolumeBackupPolicyResponse, error)
	listVolumeGroups                     func(ctx context.Context, request core.ListVolumeGroupsRequest) (core.ListVolumeGroupsResponse, error)
}

func (s *stubBlockStorage) GetBootVolume(ctx context.Context, request core.GetBootVolumeRequest) (core.GetBootVolumeResponse, error) {
	if s.getBootVolume != nil {
		return s.getBootVolume(ctx, request)
	}
	return core.GetBootVolumeResponse{}, nil
}

func (s *stubBlockStorage) GetVolume(ctx context.Context, request core.GetVolumeRequest) (core.GetVolumeResponse, error) {
	if s.getVolume != nil {
		return s.getVolume(ctx, request)
	}
	return core.GetVolumeResponse{}, nil
}

func (s *stubBlockStorage) GetVolumeBackupPolicyAssetAssignment(ctx context.Context, request core.GetVolumeBackupPolicyAssetAssignmentRequest) (core.GetVolumeBackupPolicyAssetAssignmentResponse, error) {
	if s.getVolumeBackupPolicyAssetAssignment != nil {
		return s.getVolumeBackupPolicyAssetAssignment(ctx, request)
	}
	return core.GetVolumeBackupPolicyAssetAssignmentResponse{}, nil
}

func (s *stubBlockStorage) GetVolumeBackupPolicy(ctx context.Context, request core.GetVolumeBackupPolicyRequest) (core.GetVolumeBackupPolicyResponse, error) {
	if s.getVolumeBackupPolicy != nil {
		return s.getVolumeBackupPolicy(ctx, request)
	}
	return core.GetVolumeBackupPolicyResponse{}, nil
}

func (s *stubBlockStorage) ListVolumeGroups(ctx context.Context, request core.ListVolumeGroupsRequest) (core.ListVolumeGroupsResponse, error) {
	if s.listVolumeGroups != nil {
		return s.listVolumeGroups(ctx, request)
	}
	return core.ListVolumeGroupsResponse{}, nil
}

type stubLoadBalancer struct {
	listLoadBalancers func(ctx context.Context, request loadbalancer.ListLoadBalancersRequest) (loadbalancer.ListLoadBalancersResponse, error)
}

func (s *stubLoadBalancer) ListLoadBalancers(ctx context.Context, request loadbalancer.ListLoadBalancersRequest) (loadbalancer.ListLoadBalancersResponse, error) {
	if s.listLoadBalancers != nil {
		return s.listLoadBalancers(ctx, request)
	}
	return loadbalancer.ListLoadBalancersResponse{}, nil
}

type stubContainerEngine struct {
	listClusters  func(ctx context.Context, request containerengine.ListClustersRequest) (containerengine.ListClustersResponse, error)
	listNodePools func(ctx context.Context, request containerengine.ListNodePoolsRequest) (containerengine.ListNodePoolsResponse, error)
	getNodePool   func(ctx context.Context, request containerengine.GetNodePoolRequest) (containerengine.GetNodePoolResponse, error)
}

func (s *stubContainerEngine) ListClusters(ctx context.Context, request containerengine.ListClustersRequest) (containerengine.ListClustersResponse, error) {
	if s.listClusters != nil {
		return s.listClusters(ctx, request)
	}
	return containerengine.ListClustersResponse{}, nil
}

func (s *stubContainerEngine) ListNodePools(ctx context.Context, request containerengine.ListNodePoolsRequest) (containerengine.ListNodePoolsResponse, error) {
	if s.listNodePools != nil {
		return s.listNodePools(ctx, request)
	}
	return containerengine.ListNodePoolsResponse{}, nil
}

func (s *stubContainerEngine) GetNodePool(ctx context.Context, request containerengine.GetNodePoolRequest) (containerengine.GetNodePoolResponse, error) {
	if s.getNodePool != nil {
		return s.getNodePool(ctx, request)
	}
	return containerengine.GetNodePoolResponse{}, nil
}

type stubIdentity struct {
	listCompartments        func(ctx context.Context, request identity.ListCompartmentsRequest) (identity.ListCompartmentsResponse, error)
	getCompartment          func(ctx context.Context, request identity.GetCompartmentRequest) (identity.GetCompartmentResponse, error)
	listRegionSubscriptions func(ctx context.Context, request identity.ListRegionSubscriptionsRequest) (identity.ListRegionSubscriptionsResponse, error)
}

func (s *stubIdentity) ListCompartments(ctx context.Context, request identity.ListCompartmentsRequest) (identity.ListCompartmentsResponse, error) {
	if s.listCompartments != nil {
		return s.listCompartments(ctx, request)
	}
	return identity.ListCompartmentsResponse{}, nil
}

func (s *stubIdentity) GetCompartment(ctx context.Context, request identity.GetCompartmentRequest) (identity.GetCompartmentResponse, error) {
	if s.getCompartment != nil {
		return s.getCompartment(ctx, request)
	}
	return identity.GetCompartmentResponse{}, nil
}

func (s *stubIdentity) ListRegionSubscriptions(ctx context.Context, request identity.ListRegionSubscriptionsRequest) (identity.ListRegionSubscriptionsResponse, error) {
	if s.listRegionSubscriptions != nil {
		return s.listRegionSubscriptions(ctx, request)
	}
	return identity.ListRegionSubscriptionsResponse{}, nil
}

// newTestClientContext assembles a client context over the stubs with a
// fast retry policy.
func newTestClientContext(compute *stubCompute, network *stubNetwork, storage *stubBlockStorage, lb *stubLoadBalancer, ce *stubContainerEngine, id *stubIdentity) *ClientContext {
	if compute == nil {
		compute = &stubCompute{}
	}
	if network == nil {
		network = &stubNetwork{}
	}
	if storage == nil {
		storage = &stubBlockStorage{}
	}
	if lb == nil {
		lb = &stubLoadBalancer{}
	}
	if ce == nil {
		ce = &stubContainerEngine{}
	}
	if id == nil {
		id = &stubIdentity{}
	}

	cc := &ClientContext{
		Region:          "sa-saopaulo-1",
		TenancyID:       "ocid1.tenancy.oc1..test",
		Compute:         compute,
		Network:         network,
		BlockStorage:    storage,
		LoadBalancer:    lb,
		ContainerEngine: ce,
		Identity:        id,
		Caller:          NewRemoteCaller(RetryPolicy{MaxAttempts: 2, MaxWait: time.Millisecond}),
	}
	cc.Compartments = NewCompartmentNameCache(id, cc.TenancyID)
	return cc
}
