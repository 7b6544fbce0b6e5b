// Package events detects gait events within segmented strides from
// body-frame IMU data, following Rampp et al. 2014.
//
// # Events
//
// For every segmented stride the detector derives three events from
// the medio-lateral gyroscope and the anterior-posterior acceleration:
//
//   - tc (terminal contact, toe off): the last negative-to-positive
//     zero crossing of gyr_ml before the swing phase maximum.
//   - ic (initial contact, heel strike): the minimum of acc_pa inside
//     a search region around the steepest negative gyr_ml slope after
//     the swing phase maximum.
//   - min_vel (mid-stance): the center of the lowest-energy window of
//     the gyroscope norm within the stride.
//
// Strides where an event cannot be found, or where the events violate
// their natural order, keep NaN entries in the segmented result and
// are skipped when the min_vel stride list is built.
//
// # Min-vel strides
//
// The segmented strides (template start to template start) are
// re-sliced into min_vel strides running from one mid-stance to the
// next. A min_vel stride therefore contains, in order: min_vel (its
// start), tc, ic, and the following mid-stance as its end. The ic of
// the preceding stride is carried along as pre_ic. Two consecutive
// segmented strides only form a min_vel stride if they are adjacent in
// the signal; at every break in the stride sequence the pre_ic of the
// following stride is NaN and no stride spans the gap.
//
// Detection is O(n) per stride.
package events
