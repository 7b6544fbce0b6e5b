// Package gaitkit analyzes IMU (inertial measurement unit) sensor data to
// quantify human gait — from raw accelerometer/gyroscope streams to
// per-stride spatial and temporal parameters.
//
// 🚀 What is gaitkit?
//
//	A modular library covering the full stride-analysis pipeline:
//		• Data model: labeled multi-axis signals, multi-sensor sets, stride lists
//		• Body frame: sensor→anatomical axis conversion (PA/ML/SI)
//		• Gait detection: windowed frequency analysis of walking bouts
//		• Stride segmentation: subsequence DTW against stride templates
//		• Event detection: IC / TC / min-vel gait events per stride
//		• Trajectory: quaternion orientation + double-integrated position
//		• Parameters: stride time, swing/stance, stride length, clearance
//		• Evaluation: stride matching, precision/recall/F1, error metrics
//
// ✨ Why choose gaitkit?
//
//   - Estimator-style API – configure a struct, call its action method,
//     read the results from the returned value
//   - Explicit errors – every package exposes sentinel errors, matched
//     with errors.Is
//   - Deterministic – no global state, stable iteration order everywhere
//
// Under the hood, everything is organized into focused subpackages:
//
//	imu/        — Signal, SensorSet, stride list types & validation
//	bodyframe/  — sensor frame → body frame conversion
//	signalproc/ — resampling, peaks, autocorrelation, sliding windows
//	transform/  — data scalers (fixed, abs-max, min-max, grouped)
//	dtw/        — DTW distance + template-based stride segmentation
//	gaitdetect/ — gait sequence detection (locomotion band analysis)
//	events/     — stride event detection (IC, TC, min-vel)
//	rotations/  — quaternion helpers on gonum's quat numbers
//	orient/     — gyroscope integration & Madgwick AHRS
//	position/   — forward-backward integrated stride positions
//	trajectory/ — per-stride orientation+position reconstruction
//	params/     — temporal & spatial stride parameters
//	evalutils/  — stride matching and parameter error metrics
//	dataset/    — labeled recording index with group subsetting
//
// A typical pipeline chains these stages:
//
//	raw IMU → bodyframe → gaitdetect → dtw (segment) → events →
//	trajectory → params → evalutils
//
// Dive into the per-package doc.go files for algorithm outlines,
// complexity notes and usage examples.
package gaitkit
