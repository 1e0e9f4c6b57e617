/*Command activity-mask reads an RTTM speaker segmentation and writes one TSV
  row per (recording, speaker) pair, with the number of active samples and the
  canonical interval list of the speaker's activity mask.

  With --region, a DENSE column is added containing the mask over that region
  as a string of 0s and 1s.  The region uses slice syntax: "start:stop",
  "start:", ":stop", or a single sample index.

  Usage: activity-mask [--sample-rate=16000] [--length=N] [--region=a:b] [--out=path] segments.rttm[.gz]
*/
package main
