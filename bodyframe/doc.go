// Package bodyframe converts sensor-frame IMU signals into the
// anatomical foot body frame (FBF) used by all gait algorithms.
//
// # Conventions
//
// The sensor frame assumes a foot-mounted IMU with x pointing anterior
// (walking direction), y to the wearer's left and z up. The body frame
// axes are posterior-anterior (PA), medio-lateral (ML) and
// superior-inferior (SI). Converting both feet into the body frame
// makes left and right signals directly comparable, so one stride
// template fits both sides.
//
// The right foot is the mirror image of the left in the sagittal
// plane. Mirroring flips the y component of proper vectors
// (acceleration) and the x and z components of pseudo-vectors
// (angular rate):
//
//	left:  acc_pa=+x  acc_ml=+y  acc_si=+z   gyr_pa=+x  gyr_ml=+y  gyr_si=+z
//	right: acc_pa=+x  acc_ml=−y  acc_si=+z   gyr_pa=−x  gyr_ml=+y  gyr_si=−z
//
// After conversion gyr_ml shows the characteristic positive swing peak
// on both feet.
package bodyframe
