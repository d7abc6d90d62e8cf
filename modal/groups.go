// Copyright 2015 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modal

// Concrete group marker types. Each is a zero-sized type implementing
// Group, naming one input or output group of the GMT FEM model this engine
// was built to reduce. In the source this is ported from, one such type
// per named group is materialized by a build-time code generator reading
// the FEM archive's schema (build/io.rs, build/names.rs); that generator
// is explicitly out of scope here (spec.md §1), so the surface it would
// have produced is declared directly below instead. The set is not
// exhaustive - it covers the groups exercised by this module's builder
// pipeline and tests - but new groups follow the same one-liner pattern.

// Input groups (forces and torques).

type OSSM1Lcl6F struct{}

func (OSSM1Lcl6F) GroupName() string { return "OSS_M1_lcl_6F" }

type OSSAzDriveTorque struct{}

func (OSSAzDriveTorque) GroupName() string { return "OSS_AzDrive_Torque" }

type OSSElDriveTorque struct{}

func (OSSElDriveTorque) GroupName() string { return "OSS_ElDrive_Torque" }

type OSSRotDriveTorque struct{}

func (OSSRotDriveTorque) GroupName() string { return "OSS_RotDrive_Torque" }

type MCM2Lcl6F struct{}

func (MCM2Lcl6F) GroupName() string { return "MC_M2_lcl_force_6F" }

type MCM2TE6F struct{}

func (MCM2TE6F) GroupName() string { return "MC_M2_TE_6F" }

type MCM2RB6F struct{}

func (MCM2RB6F) GroupName() string { return "MC_M2_RB_6F" }

type OSSCRING6F struct{}

func (OSSCRING6F) GroupName() string { return "OSS_CRING_6F" }

type OSSTruss6F struct{}

func (OSSTruss6F) GroupName() string { return "OSS_Truss_6F" }

type OSSTopEnd6F struct{}

func (OSSTopEnd6F) GroupName() string { return "OSS_TopEnd_6F" }

type OSSHarpointDeltaF struct{}

func (OSSHarpointDeltaF) GroupName() string { return "OSS_Harpoint_delta_F" }

type OSSBASE6F struct{}

func (OSSBASE6F) GroupName() string { return "OSS_BASE_6F" }

type OSSCellLcl6F struct{}

func (OSSCellLcl6F) GroupName() string { return "OSS_Cell_lcl_6F" }

type OSSGIR6F struct{}

func (OSSGIR6F) GroupName() string { return "OSS_GIR_6F" }

// Output groups (displacements and angles).

type OSSM1Lcl struct{}

func (OSSM1Lcl) GroupName() string { return "OSS_M1_lcl" }

type OSSAzEncoderAngle struct{}

func (OSSAzEncoderAngle) GroupName() string { return "OSS_AzEncoder_Angle" }

type OSSElEncoderAngle struct{}

func (OSSElEncoderAngle) GroupName() string { return "OSS_ElEncoder_Angle" }

type OSSRotEncoderAngle struct{}

func (OSSRotEncoderAngle) GroupName() string { return "OSS_RotEncoder_Angle" }

type MCM2Lcl6D struct{}

func (MCM2Lcl6D) GroupName() string { return "MC_M2_lcl_6D" }

type MCM2RB6D struct{}

func (MCM2RB6D) GroupName() string { return "MC_M2_RB_6D" }

type OSSCRING6D struct{}

func (OSSCRING6D) GroupName() string { return "OSS_CRING_6d" }

type OSSTruss6D struct{}

func (OSSTruss6D) GroupName() string { return "OSS_Truss_6d" }

type OSSBASE6D struct{}

func (OSSBASE6D) GroupName() string { return "OSS_BASE_6D" }

type OSSCellLcl struct{}

func (OSSCellLcl) GroupName() string { return "OSS_Cell_lcl" }

type OSSHardpointD struct{}

func (OSSHardpointD) GroupName() string { return "OSS_Hardpoint_D" }

type OSSGIR6D struct{}

func (OSSGIR6D) GroupName() string { return "OSS_GIR_6d" }

type OSSM1LOS struct{}

func (OSSM1LOS) GroupName() string { return "OSS_M1_LOS" }

type OSSIMUs6D struct{}

func (OSSIMUs6D) GroupName() string { return "OSS_IMUs_6d" }
