package main

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// ListInstancesInCompartment lists the compute instances of a
// compartment in the states worth documenting.
func ListInstancesInCompartment(ctx context.Context, cc *ClientContext, compartmentID string) ([]InstanceSummary, error) {
	items, err := listAllPages(ctx, cc.Caller, "ListInstances", func(ctx context.Context, page *string) ([]core.Instance, *string, error) {
		resp, err := cc.Compute.ListInstances(ctx, core.ListInstancesRequest{
			CompartmentId: common.String(compartmentID),
			Page:          page,
		})
		return resp.Items, resp.OpcNextPage, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}

	summaries := []InstanceSummary{}
	for _, i := range items {
		switch i.LifecycleState {
		case core.InstanceLifecycleStateRunning, core.InstanceLifecycleStateStopped:
			summaries = append(summaries, InstanceSummary{
				ID:          derefString(i.Id),
				DisplayName: derefString(i.DisplayName),
				Status:      string(i.LifecycleState),
			})
		}
	}
	return summaries, nil
}

// FetchInstanceDetails builds the full per-instance aggregate. The root
// instance fetch is the only hard dependency; every sub-resource below
// it is optional and degrades to its sentinel when absent.
func FetchInstanceDetails(ctx context.Context, cc *ClientContext, instanceID, compartmentName string) (Instance, error) {
	instResp, err := callWithRetry(ctx, cc.Caller, "GetInstance", func(ctx context.Context) (core.GetInstanceResponse, error) {
		return cc.Compute.GetInstance(ctx, core.GetInstanceRequest{InstanceId: common.String(instanceID)})
	})
	if err != nil {
		return Instance{}, fmt.Errorf("instance %s could not be fetched (it may have been terminated recently): %w", instanceID, err)
	}
	inst := instResp.Instance

	result := Instance{
		HostName:              derefString(inst.DisplayName),
		LifecycleState:        string(inst.LifecycleState),
		Shape:                 derefString(inst.Shape),
		OCPUs:                 NotAvailable,
		Memory:                NotAvailable,
		OSName:                NotAvailable,
		BootVolumeGB:          NotAvailable,
		PrivateIP:             NotAvailable,
		PublicIP:              NotAvailable,
		BackupPolicyName:      NoBackupPolicy,
		BlockVolumes:          []BlockVolume{},
		SecurityLists:         []SecurityList{},
		NetworkSecurityGroups: []NetworkSecurityGroup{},
		CompartmentName:       compartmentName,
	}
	if inst.ShapeConfig != nil {
		if inst.ShapeConfig.Ocpus != nil {
			result.OCPUs = fmt.Sprintf("%d", int(*inst.ShapeConfig.Ocpus))
		}
		if inst.ShapeConfig.MemoryInGBs != nil {
			result.Memory = fmt.Sprintf("%d", int(*inst.ShapeConfig.MemoryInGBs))
		}
	}

	if inst.ImageId != nil {
		if img, ok := optionalCall(ctx, cc.Caller, "GetImage", func(ctx context.Context) (core.GetImageResponse, error) {
			return cc.Compute.GetImage(ctx, core.GetImageRequest{ImageId: inst.ImageId})
		}); ok {
			result.OSName = fmt.Sprintf("%s %s", derefString(img.OperatingSystem), derefString(img.OperatingSystemVersion))
		}
	}

	fetchInstanceNetworking(ctx, cc, inst, &result)
	fetchInstanceStorage(ctx, cc, inst, &result)

	return result, nil
}

// fetchInstanceNetworking resolves the primary VNIC and everything that
// hangs off it: addresses, subnet security lists, the subnet route table
// and the VNIC's network security groups.
func fetchInstanceNetworking(ctx context.Context, cc *ClientContext, inst core.Instance, result *Instance) {
	attachments, ok := optionalListAllPages(ctx, cc.Caller, "ListVnicAttachments", func(ctx context.Context, page *string) ([]core.VnicAttachment, *string, error) {
		resp, err := cc.Compute.ListVnicAttachments(ctx, core.ListVnicAttachmentsRequest{
			CompartmentId: inst.CompartmentId,
			InstanceId:    inst.Id,
			Page:          page,
		})
		return resp.Items, resp.OpcNextPage, err
	})
	if !ok || len(attachments) == 0 {
		return
	}

	vnic, ok := optionalCall(ctx, cc.Caller, "GetVnic", func(ctx context.Context) (core.GetVnicResponse, error) {
		return cc.Network.GetVnic(ctx, core.GetVnicRequest{VnicId: attachments[0].VnicId})
	})
	if !ok {
		return
	}

	if vnic.PrivateIp != nil && *vnic.PrivateIp != "" {
		result.PrivateIP = *vnic.PrivateIp
	}
	if vnic.PublicIp != nil && *vnic.PublicIp != "" {
		result.PublicIP = *vnic.PublicIp
	}

	if subnet, ok := optionalCall(ctx, cc.Caller, "GetSubnet", func(ctx context.Context) (core.GetSubnetResponse, error) {
		return cc.Network.GetSubnet(ctx, core.GetSubnetRequest{SubnetId: vnic.SubnetId})
	}); ok {
		for _, slID := range subnet.SecurityListIds {
			slID := slID
			if sl, ok := optionalCall(ctx, cc.Caller, "GetSecurityList", func(ctx context.Context) (core.GetSecurityListResponse, error) {
				return cc.Network.GetSecurityList(ctx, core.GetSecurityListRequest{SecurityListId: common.String(slID)})
			}); ok {
				result.SecurityLists = append(result.SecurityLists, convertSecurityList(sl.SecurityList))
			}
		}

		if rt, ok := optionalCall(ctx, cc.Caller, "GetRouteTable", func(ctx context.Context) (core.GetRouteTableResponse, error) {
			return cc.Network.GetRouteTable(ctx, core.GetRouteTableRequest{RtId: subnet.RouteTableId})
		}); ok {
			converted := convertRouteTable(ctx, cc, rt.RouteTable)
			result.RouteTable = &converted
		}
	}

	for _, nsgID := range vnic.NsgIds {
		if nsg, ok := fetchNetworkSecurityGroup(ctx, cc, nsgID); ok {
			result.NetworkSecurityGroups = append(result.NetworkSecurityGroups, nsg)
		}
	}
}

// fetchInstanceStorage resolves the boot volume with its backup policy
// and every attached block volume. Attachments still provisioning and
// iSCSI-type attachments are skipped, matching the documented scope.
func fetchInstanceStorage(ctx context.Context, cc *ClientContext, inst core.Instance, result *Instance) {
	if bootAtts, ok := optionalListAllPages(ctx, cc.Caller, "ListBootVolumeAttachments", func(ctx context.Context, page *string) ([]core.BootVolumeAttachment, *string, error) {
		resp, err := cc.Compute.ListBootVolumeAttachments(ctx, core.ListBootVolumeAttachmentsRequest{
			AvailabilityDomain: inst.AvailabilityDomain,
			CompartmentId:      inst.CompartmentId,
			InstanceId:         inst.Id,
			Page:               page,
		})
		return resp.Items, resp.OpcNextPage, err
	}); ok && len(bootAtts) > 0 {
		result.BootVolumeID = derefString(bootAtts[0].BootVolumeId)
		if bootVol, ok := optionalCall(ctx, cc.Caller, "GetBootVolume", func(ctx context.Context) (core.GetBootVolumeResponse, error) {
			return cc.BlockStorage.GetBootVolume(ctx, core.GetBootVolumeRequest{BootVolumeId: bootAtts[0].BootVolumeId})
		}); ok {
			if bootVol.SizeInGBs != nil {
				result.BootVolumeGB = fmt.Sprintf("%d", *bootVol.SizeInGBs)
			}
			if name, found := lookupBackupPolicyName(ctx, cc, derefString(bootVol.Id)); found {
				result.BackupPolicyName = name
			}
		}
	}

	atts, ok := optionalListAllPages(ctx, cc.Caller, "ListVolumeAttachments", func(ctx context.Context, page *string) ([]core.VolumeAttachment, *string, error) {
		resp, err := cc.Compute.ListVolumeAttachments(ctx, core.ListVolumeAttachmentsRequest{
			CompartmentId: inst.CompartmentId,
			InstanceId:    inst.Id,
			Page:          page,
		})
		return resp.Items, resp.OpcNextPage, err
	})
	if !ok {
		return
	}
	for _, att := range atts {
		if att.GetLifecycleState() != core.VolumeAttachmentLifecycleStateAttached {
			continue
		}
		if _, isIscsi := att.(core.IScsiVolumeAttachment); isIscsi {
			continue
		}
		vol, ok := optionalCall(ctx, cc.Caller, "GetVolume", func(ctx context.Context) (core.GetVolumeResponse, error) {
			return cc.BlockStorage.GetVolume(ctx, core.GetVolumeRequest{VolumeId: att.GetVolumeId()})
		})
		if !ok {
			continue
		}
		policyName := NoBackupPolicy
		if name, found := lookupBackupPolicyName(ctx, cc, derefString(vol.Id)); found {
			policyName = name
		}
		sizeGB := float64(0)
		if vol.SizeInGBs != nil {
			sizeGB = float64(*vol.SizeInGBs)
		}
		result.BlockVolumes = append(result.BlockVolumes, BlockVolume{
			ID:               derefString(vol.Id),
			DisplayName:      derefString(vol.DisplayName),
			SizeInGBs:        sizeGB,
			BackupPolicyName: policyName,
		})
	}
}

// lookupBackupPolicyName resolves the backup policy assigned to a volume
// asset, reporting false when no assignment exists.
func lookupBackupPolicyName(ctx context.Context, cc *ClientContext, assetID string) (string, bool) {
	assignment, ok := optionalCall(ctx, cc.Caller, "GetVolumeBackupPolicyAssetAssignment", func(ctx context.Context) (core.GetVolumeBackupPolicyAssetAssignmentResponse, error) {
		return cc.BlockStorage.GetVolumeBackupPolicyAssetAssignment(ctx, core.GetVolumeBackupPolicyAssetAssignmentRequest{AssetId: common.String(assetID)})
	})
	if !ok || len(assignment.Items) == 0 {
		return "", false
	}
	policy, ok := optionalCall(ctx, cc.Caller, "GetVolumeBackupPolicy", func(ctx context.Context) (core.GetVolumeBackupPolicyResponse, error) {
		return cc.BlockStorage.GetVolumeBackupPolicy(ctx, core.GetVolumeBackupPolicyRequest{PolicyId: assignment.Items[0].PolicyId})
	})
	if !ok || policy.DisplayName == nil {
		return "", false
	}
	return *policy.DisplayName, true
}
