package main

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/containerengine"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// defaultNodeBootVolumeGB is the platform default applied when neither
// the node pool nor its source image declares a boot volume size.
const defaultNodeBootVolumeGB = 47

// collectKubernetesClusters lists the OKE clusters of the compartment
// with their node pools. VCN names come from the vcnNames map built
// from the VCNs collected earlier in the same run.
func collectKubernetesClusters(ctx context.Context, cc *ClientContext, compartmentID string, vcnNames map[string]string) ([]KubernetesCluster, error) {
	items, err := listAllPages(ctx, cc.Caller, "ListClusters", func(ctx context.Context, page *string) ([]containerengine.ClusterSummary, *string, error) {
		resp, err := cc.ContainerEngine.ListClusters(ctx, containerengine.ListClustersRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		return resp.Items, resp.OpcNextPage, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list OKE clusters: %w", err)
	}

	clusters := []KubernetesCluster{}
	for _, summary := range items {
		if summary.LifecycleState == containerengine.ClusterLifecycleStateDeleted {
			continue
		}
		cluster := KubernetesCluster{
			ID:                 derefString(summary.Id),
			Name:               derefString(summary.Name),
			KubernetesVersion:  orNotAvailable(derefString(summary.KubernetesVersion)),
			VcnID:              derefString(summary.VcnId),
			VcnName:            NotAvailable,
			PublicAPIEndpoint:  NotAvailable,
			PrivateAPIEndpoint: NotAvailable,
			NodePools:          []NodePool{},
		}
		if name, ok := vcnNames[cluster.VcnID]; ok {
			cluster.VcnName = name
		}
		if summary.Endpoints != nil {
			if derefString(summary.Endpoints.PublicEndpoint) != "" {
				cluster.PublicAPIEndpoint = *summary.Endpoints.PublicEndpoint
			}
			if derefString(summary.Endpoints.PrivateEndpoint) != "" {
				cluster.PrivateAPIEndpoint = *summary.Endpoints.PrivateEndpoint
			}
		}

		if poolItems, ok := optionalListAllPages(ctx, cc.Caller, "ListNodePools", func(ctx context.Context, page *string) ([]containerengine.NodePoolSummary, *string, error) {
			resp, err := cc.ContainerEngine.ListNodePools(ctx, containerengine.ListNodePoolsRequest{
				CompartmentId: common.String(compartmentID),
				ClusterId:     summary.Id,
				Page:          page,
			})
			return resp.Items, resp.OpcNextPage, err
		}); ok {
			for _, poolSummary := range poolItems {
				if pool, ok := fetchNodePool(ctx, cc, derefString(poolSummary.Id)); ok {
					cluster.NodePools = append(cluster.NodePools, pool)
				}
			}
		}

		clusters = append(clusters, cluster)
	}
	return clusters, nil
}

// fetchNodePool resolves one node pool's shape, sizing and placement.
// The boot volume size falls back from the pool's explicit setting to
// the source image size and finally to the platform default.
func fetchNodePool(ctx context.Context, cc *ClientContext, nodePoolID string) (NodePool, bool) {
	resp, ok := optionalCall(ctx, cc.Caller, "GetNodePool", func(ctx context.Context) (containerengine.GetNodePoolResponse, error) {
		return cc.ContainerEngine.GetNodePool(ctx, containerengine.GetNodePoolRequest{NodePoolId: common.String(nodePoolID)})
	})
	if !ok {
		return NodePool{}, false
	}
	np := resp.NodePool

	pool := NodePool{
		Name:        derefString(np.Name),
		Shape:       derefString(np.NodeShape),
		OCPUs:       NotAvailable,
		MemoryInGBs: NotAvailable,
		OSImage:     NotAvailable,
		SubnetName:  NotAvailable,
	}
	if np.NodeShapeConfig != nil {
		if np.NodeShapeConfig.Ocpus != nil {
			pool.OCPUs = fmt.Sprintf("%d", int(*np.NodeShapeConfig.Ocpus))
		}
		if np.NodeShapeConfig.MemoryInGBs != nil {
			pool.MemoryInGBs = fmt.Sprintf("%d", int(*np.NodeShapeConfig.MemoryInGBs))
		}
	}
	if np.NodeConfigDetails != nil {
		if np.NodeConfigDetails.Size != nil {
			pool.NodeCount = *np.NodeConfigDetails.Size
		}
		if len(np.NodeConfigDetails.PlacementConfigs) > 0 {
			subnetID := derefString(np.NodeConfigDetails.PlacementConfigs[0].SubnetId)
			if subnetID != "" {
				if subnet, ok := optionalCall(ctx, cc.Caller, "GetSubnet", func(ctx context.Context) (core.GetSubnetResponse, error) {
					return cc.Network.GetSubnet(ctx, core.GetSubnetRequest{SubnetId: common.String(subnetID)})
				}); ok && derefString(subnet.DisplayName) != "" {
					pool.SubnetName = *subnet.DisplayName
				}
			}
		}
	}

	pool.BootVolumeSizeInGB = defaultNodeBootVolumeGB
	if source, isImage := np.NodeSourceDetails.(containerengine.NodeSourceViaImageDetails); isImage {
		if source.BootVolumeSizeInGBs != nil {
			pool.BootVolumeSizeInGB = *source.BootVolumeSizeInGBs
		}
		if source.ImageId != nil {
			if img, ok := optionalCall(ctx, cc.Caller, "GetImage", func(ctx context.Context) (core.GetImageResponse, error) {
				return cc.Compute.GetImage(ctx, core.GetImageRequest{ImageId: source.ImageId})
			}); ok {
				if derefString(img.DisplayName) != "" {
					pool.OSImage = *img.DisplayName
				}
				if source.BootVolumeSizeInGBs == nil && img.SizeInMBs != nil {
					pool.BootVolumeSizeInGB = *img.SizeInMBs / 1024
				}
			}
		}
	}

	return pool, true
}
