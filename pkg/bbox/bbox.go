// Package bbox implements extraction and parsing of word bounding boxes
// produced by poppler's pdftotext in its -bbox and -bbox-layout modes.
//
// pdftotext emits an XHTML document of the form:
//
//	<html xmlns="http://www.w3.org/1999/xhtml">
//	<head>...</head>
//	<body>
//	  <doc>
//	    <page width="612.000000" height="792.000000">
//	      <word xMin="72.0" yMin="71.2" xMax="101.4" yMax="83.2">Hello</word>
//	    </page>
//	  </doc>
//	</body>
//	</html>
//
// With -bbox-layout the words are nested under flow, block and line
// elements. Both shapes are accepted: every word below a page belongs to it.
//
// Key Types:
//
// - Document: Top-level structure holding every page found in the output
// - Page: A page with its declared width and height in PDF points
// - Word: A single non-blank word with its bounding box
// - BoundingBox: The xMin/yMin/xMax/yMax extremes of a word
// - Extractor: Runs the extraction tool against a PDF
//
// Main Functions:
//
// - Parse: Parses extraction output into the object model
// - Extractor.Run: Invokes pdftotext and returns its raw output
package bbox
