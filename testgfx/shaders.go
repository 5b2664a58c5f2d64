package testgfx

import (
	gfx "github.com/TheCell/webPano"
)

var ColorVS gfx.VertexShader = `
precision mediump float;

attribute vec3 vertexPosition;
attribute vec4 vertexColor;
varying vec4 fragColor;

uniform mat4 mWorld;
uniform mat4 mView;
uniform mat4 mProjection;

void main()
{
	fragColor = vertexColor;
	gl_Position = mProjection * mView * mWorld * vec4(vertexPosition, 1.0);
}`

var ColorFS gfx.FragmentShader = `
precision mediump float;

varying vec4 fragColor;

void main()
{
	gl_FragColor = fragColor;
}`

// FlatVS has no uniforms at all, like the 2D triangle.
var FlatVS gfx.VertexShader = `
precision mediump float;

attribute vec3 vertexPosition;
attribute vec4 vertexColor;
varying vec4 fragColor;

void main()
{
	fragColor = vertexColor;
	gl_Position = vec4(vertexPosition, 1.0);
}`

// BrokenVS is missing a semicolon.
var BrokenVS gfx.VertexShader = `
attribute vec3 vertexPosition;

void main()
{
	gl_Position = vec4(vertexPosition, 1.0)
}`

// BrokenFS has an unclosed call.
var BrokenFS gfx.FragmentShader = `
precision mediump float;

varying vec4 fragColor;

void main()
{
	gl_FragColor = vec4(fragColor.rgb, 1.0;
}`

// MismatchFS compiles but reads a varying the vertex stages never write,
// so linking fails.
var MismatchFS gfx.FragmentShader = `
precision mediump float;

varying vec2 fragTexCoord;

void main()
{
	gl_FragColor = vec4(fragTexCoord, 0.0, 1.0);
}`
