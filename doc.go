/*
The logoclean package contains tools and functions to prepare logo
images for the web. Logos tend to arrive as PNGs sitting on a solid
near white canvas; the tools here classify the canvas pixels, make
them transparent, trim the empty margins away and optionally give
the artwork a mild contrast and sharpness boost.

The package can be used directly, but most use is through the
command line tools in cmd/. All of them describe themselves with the
'-h' flag:

  logoclean   process the standard logo set in place, keeping a
              backup copy of each original
  logowipe    strip backgrounds using a selectable detection method:
              simple, aggressive, advanced or ultra
  logosheet   build a PDF contact sheet of a directory of logos
  logohist    draw the channel histogram of an image, to help pick a
              sensible threshold

Strategies

Classification runs under one of four strategies. Simple wipes any
pixel whose colour channels all exceed a threshold. Aggressive uses
a lower threshold but requires the channels to closely match each
other, so saturated light colours survive. Advanced combines the
white test with edge detection and a colour distance measure, and
Dominant wipes whatever exact colour occurs most often in the image,
within a tolerance. Every strategy works by making pixels fully
transparent; trimming then crops the image to the bounding box of
the remaining content.

Processing happens on non premultiplied (NRGBA) pixel buffers from
start to finish, as premultiplied storage would throw away the
colour of every pixel the wipe makes transparent.

Defaults

The file list, input directory and processing defaults that the
tools use can be overridden in ~/.config/logoclean/config.yaml; see
the config package for the available keys.
*/
package logoclean
