package demos

import (
	gfx "github.com/TheCell/webPano"
)

// Sources are written for GLSL ES 1.00; the GL_ES guard lets desktop GLSL
// 1.20 compile them unchanged.

var triangleVS gfx.VertexShader = `
#ifdef GL_ES
precision mediump float;
#endif

attribute vec3 vertexPosition;
attribute vec4 vertexColor;
varying vec4 fragColor;

void main()
{
	fragColor = vertexColor;
	gl_Position = vec4(vertexPosition, 1.0);
}`

var colorVS gfx.VertexShader = `
#ifdef GL_ES
precision mediump float;
#endif

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

var colorFS gfx.FragmentShader = `
#ifdef GL_ES
precision mediump float;
#endif

varying vec4 fragColor;

void main()
{
	gl_FragColor = fragColor;
}`

var textureVS gfx.VertexShader = `
#ifdef GL_ES
precision mediump float;
#endif

attribute vec3 vertexPosition;
attribute vec2 vertTexCoord;
varying vec2 fragTexCoord;

uniform mat4 mWorld;
uniform mat4 mView;
uniform mat4 mProjection;

void main()
{
	fragTexCoord = vertTexCoord;
	gl_Position = mProjection * mView * mWorld * vec4(vertexPosition, 1.0);
}`

var textureFS gfx.FragmentShader = `
#ifdef GL_ES
precision mediump float;
#endif

varying vec2 fragTexCoord;
uniform sampler2D sampler;

void main()
{
	gl_FragColor = texture2D(sampler, fragTexCoord);
}`
